/*
Package css computes effective styles for document blocks and compiles
them to CSS-facing output: inline style declarations and CSS
custom-property references.

Overview

Styling a block is a four-level cascade with strict precedence,

    global defaults < inherited (ancestor) styles < block-type/variant
    styles < local overrides

realized as one deep merge per block (EffectiveStyles). The result of a
block becomes the inherited layer of its children, so inheritance falls
out of the traversal, not out of any ambient context.

All computations here are pure functions of their inputs; a Resolver only
bundles host-owned configuration and explicitly registered transforms.
There is no failure mode: missing keys are omitted, malformed reference
tokens compile best-effort, ambiguous selector matches are decided by
declaration order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'blox.style'.
func tracer() tracing.Trace {
	return tracing.Select("blox.style")
}
