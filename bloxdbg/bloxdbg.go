/*
Package bloxdbg implements helpers to debug a styled block tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bloxdbg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/style/css"
	"github.com/npillmayer/blox/styledtree"
	"github.com/npillmayer/blox/tree"
	tp "github.com/xlab/treeprint"
)

// TreeString renders a block document as an indented tree, one line per
// block: the block-type identifier plus the inline-style declarations of
// its computed styles (if it has been styled). Intended for test logs and
// debugging sessions.
func TreeString(root *tree.Node[*styledtree.BlockNode]) string {
	if root == nil {
		return "(empty document)"
	}
	pr := tp.New()
	pr.SetValue(label(styledtree.Block(root)))
	branches(root, pr)
	return pr.String()
}

func branches(n *tree.Node[*styledtree.BlockNode], pr tp.Tree) {
	for _, ch := range n.Children() {
		if ch == nil {
			continue
		}
		branch := pr.AddBranch(label(styledtree.Block(ch)))
		branches(ch, branch)
	}
}

func label(b *styledtree.BlockNode) string {
	if b == nil {
		return "?"
	}
	if b.Styles() == nil {
		return b.TypeID()
	}
	return fmt.Sprintf("%s  %s", b.TypeID(), inlineString(b.Styles()))
}

// inlineString flattens inline-style declarations into one stable line.
func inlineString(l style.Layer) string {
	inline := css.InlineStyles(l)
	keys := make([]string, 0, len(inline))
	for k := range inline {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	decls := make([]string, len(keys))
	for i, k := range keys {
		decls[i] = k + ":" + inline[k]
	}
	return "[" + strings.Join(decls, "; ") + "]"
}
