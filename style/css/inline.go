package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/blox/style"
)

// linkColorAttribute is the output key for the link color; link color is
// not a standard inline style property but a custom property consumed by
// element styles downstream.
const linkColorAttribute = "--wp--style--color--link"

// inlineStyleAttributes maps output keys of inline-style declarations to
// the semantic paths holding their values in an effective style layer.
// Output keys are fixed and pairwise distinct, so traversal order cannot
// matter.
var inlineStyleAttributes = []struct {
	out  string
	path []string
}{
	{"lineHeight", []string{"typography", "lineHeight"}},
	{"fontSize", []string{"typography", "fontSize"}},
	{"background", []string{"color", "gradient"}},
	{"backgroundColor", []string{"color", "background"}},
	{"color", []string{"color", "text"}},
	{linkColorAttribute, []string{"color", "link"}},
}

// InlineStyles extracts the inline-style declarations from a style layer,
// usually the effective style of a block (the operation is agnostic to
// merge order and works on raw layers just as well). Variable references
// are compiled to custom-property syntax on the way out.
//
// The result is sparse: semantic paths absent from the layer produce no
// entry, never a placeholder. It is suitable for direct application as an
// inline presentation-attribute set on a rendered element.
func InlineStyles(l style.Layer) map[string]string {
	inline := map[string]string{}
	for _, attr := range inlineStyleAttributes {
		if p, ok := l.Property(attr.path...); ok {
			inline[attr.out] = ResolveVariable(p).String()
		}
	}
	return inline
}
