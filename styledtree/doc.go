/*
Package styledtree is a straightforward default implementation of a styled
block-document tree.

Overview

A block editor manages documents as trees of typed blocks. This package
links each block to the inputs of style resolution (its type identifier,
attributes and locally declared style overrides) and to the output, the
computed effective style. Styling a whole document is done by the root
package blox; per-node resolution lives in package style/css.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("blox.dom")
}
