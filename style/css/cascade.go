package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/style/selector"
	"github.com/npillmayer/blox/styledtree"
)

// EffectiveStyles computes the effective style of one block by merging,
// in ascending precedence:
//
//   1. global, the document's root-level fallback styles,
//   2. inherited, the effective style of the block's nearest ancestor
//      (the empty layer at the document root),
//   3. the layers of all selector rules matching the block, in
//      declaration order — when several rules match, the rule declared
//      last wins,
//   4. the block's locally declared overrides.
//
// The result is a fresh layer; no input is modified. It is suitable as
// input to InlineStyles, and as the inherited layer for the block's
// children: each level's result threads down the traversal, which is how
// closer ancestors come to override farther ones.
func EffectiveStyles(b *styledtree.BlockNode, rules *selector.Map,
	global style.Layer, inherited style.Layer) style.Layer {
	//
	layers := make([]style.Layer, 0, 4)
	layers = append(layers, global, inherited)
	layers = append(layers, rules.MatchingStyles(b.TypeID(), b.Attributes())...)
	layers = append(layers, b.LocalStyles())
	return style.Cascade(layers...)
}

// Transform is a named rewrite step over an effective style layer,
// registered with a Resolver by the host at initialization. Transforms
// must be pure: they receive the merged layer and return a replacement
// (or the input itself, unchanged).
type Transform func(style.Layer) style.Layer

type namedTransform struct {
	name string
	f    Transform
}

// Resolver bundles the host-owned styling configuration of one document:
// the selector map, the global default layer, and registered transforms.
// A Resolver is immutable after initialization and safe for concurrent
// use; resolving does not read or write any shared mutable state.
type Resolver struct {
	rules      *selector.Map
	global     style.Layer
	transforms []namedTransform
}

// NewResolver creates a resolver for a selector map and a global default
// layer. Both may be nil/empty.
func NewResolver(rules *selector.Map, global style.Layer) *Resolver {
	return &Resolver{rules: rules, global: global}
}

// Register adds a named transform, to be applied to every effective style
// after the merge, in registration order. Registering a name twice
// replaces the earlier transform in place, keeping its position.
//
// This is the extension point of the styling pipeline: hosts compose
// extra styling behavior by explicit registration calls at initialization
// time, never by side effects at import time.
// It returns the resolver to allow for chaining.
func (r *Resolver) Register(name string, f Transform) *Resolver {
	for i, t := range r.transforms {
		if t.name == name {
			r.transforms[i].f = f
			return r
		}
	}
	tracer().P("transform", name).Debugf("styling: registering transform")
	r.transforms = append(r.transforms, namedTransform{name, f})
	return r
}

// EffectiveStyles computes the effective style of one block (see the free
// function) and applies the registered transforms in registration order.
func (r *Resolver) EffectiveStyles(b *styledtree.BlockNode, inherited style.Layer) style.Layer {
	effective := EffectiveStyles(b, r.rules, r.global, inherited)
	for _, t := range r.transforms {
		effective = t.f(effective)
	}
	return effective
}

// InlineStyles is a convenience forward to the package-level function.
func (r *Resolver) InlineStyles(l style.Layer) map[string]string {
	return InlineStyles(l)
}
