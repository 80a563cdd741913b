/*
Package blox styles block-based documents.

Overview

Block editors hold documents as trees of typed blocks and configure their
look at four levels: global defaults, inherited ancestor styles,
per-block-type (and variant) styles, and local per-block overrides.
This module merges those levels into one effective style per block, with
the strict precedence

    local  >  block-type/variant  >  inherited  >  global

and compiles symbolic variable references into CSS custom-property
syntax. What it does not do: render anything, persist anything, or manage
editor state — the host owns the document and the configuration, this
module owns the cascade.

Styling a document:

    rules := selector.NewMap().
        Put("core/paragraph", style.Layer{"color": style.Layer{"text": "var:color|primary"}}).
        PutVariant("core/heading/h2", isLevel(2), h2Styles)
    r := css.NewResolver(rules, theme)
    doc := blox.Style(root, r)
    inline := css.InlineStyles(styledtree.Block(root).Styles())

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package blox

import (
	"sync"

	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/style/css"
	"github.com/npillmayer/blox/styledtree"
	"github.com/npillmayer/blox/tree"
)

// Style computes the effective style for every block of a document,
// top-down, storing each block's result on the block (see
// styledtree.BlockNode.Styles) and threading it to the block's children
// as their inherited layer. The root block inherits the empty layer.
//
// Sibling subtrees are styled concurrently: resolution is a pure
// computation per block, so independent subtrees need no coordination.
// Style returns the root to allow for chaining.
func Style(root *tree.Node[*styledtree.BlockNode], r *css.Resolver) *tree.Node[*styledtree.BlockNode] {
	if root == nil || r == nil {
		return root
	}
	styleSubtree(root, r, style.Layer(nil))
	return root
}

func styleSubtree(n *tree.Node[*styledtree.BlockNode], r *css.Resolver, inherited style.Layer) {
	block := styledtree.Block(n)
	effective := r.EffectiveStyles(block, inherited)
	block.SetStyles(effective)
	children := n.Children()
	if len(children) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, ch := range children {
		if ch == nil {
			continue
		}
		wg.Add(1)
		go func(ch *tree.Node[*styledtree.BlockNode]) {
			defer wg.Done()
			styleSubtree(ch, r, effective)
		}(ch)
	}
	wg.Wait()
}
