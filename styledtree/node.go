package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/tree"
)

// BlockNode is a styled document block, the building block of the styled
// tree. A block carries the host-supplied inputs of style resolution
// (type identifier, attributes, locally declared style overrides) and one
// output slot for the computed effective style.
type BlockNode struct {
	tree.Node[*BlockNode] // we build on top of general purpose tree
	typeID                string
	attrs                 style.Attributes
	localStyles           style.Layer
	computedStyles        style.Layer
}

// NewBlockNode creates a new styled block node for a block-type
// identifier, e.g. "core/heading".
func NewBlockNode(typeID string) *tree.Node[*BlockNode] {
	b := &BlockNode{}
	b.Payload = b // Payload will always reference the node itself
	b.typeID = typeID
	return &b.Node
}

// Block gets the styled block from a generic tree node.
func Block(n *tree.Node[*BlockNode]) *BlockNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TypeID returns the block-type identifier of this block.
func (b *BlockNode) TypeID() string {
	return b.typeID
}

// Attributes returns the attributes of this block. May be nil.
func (b *BlockNode) Attributes() style.Attributes {
	return b.attrs
}

// SetAttribute sets a single block attribute, e.g. a heading level.
func (b *BlockNode) SetAttribute(key string, value interface{}) *BlockNode {
	if b.attrs == nil {
		b.attrs = style.Attributes{}
	}
	b.attrs[key] = value
	return b
}

// LocalStyles returns the locally declared style overrides of this block,
// the highest-precedence layer of the cascade. May be nil.
func (b *BlockNode) LocalStyles() style.Layer {
	return b.localStyles
}

// SetLocalStyles sets the locally declared style overrides.
func (b *BlockNode) SetLocalStyles(l style.Layer) {
	b.localStyles = l
}

// Styles returns the computed effective style of this block, or nil if
// the block has not been styled yet.
func (b *BlockNode) Styles() style.Layer {
	return b.computedStyles
}

// SetStyles sets the computed effective style of a block. Called by the
// styling traversal; hosts running their own traversal may call it as
// well.
func (b *BlockNode) SetStyles(l style.Layer) {
	tracer().P("block", b.typeID).Debugf("styling: setting computed styles")
	b.computedStyles = l
}
