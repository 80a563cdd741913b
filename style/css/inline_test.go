package css_test

import (
	"testing"

	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/style/css"
	"github.com/stretchr/testify/assert"
)

func TestInlineStylesSparseness(t *testing.T) {
	l := style.Layer{"color": style.Layer{"text": "red"}}
	inline := css.InlineStyles(l)
	if len(inline) != 1 {
		t.Errorf("expected exactly 1 declaration, are %d: %v", len(inline), inline)
	}
	if inline["color"] != "red" {
		t.Errorf("expected color:red, is %q", inline["color"])
	}
	if _, present := inline["fontSize"]; present {
		t.Error("expected no placeholder for absent fontSize, is one")
	}
}

func TestInlineStylesIgnoreSubLayerAtLeafPath(t *testing.T) {
	// a semantic path ending at a sub-layer is no leaf: never emit a
	// stringified layer as a declaration
	l := style.Layer{
		"color": style.Layer{"text": style.Layer{"oops": "red"}},
	}
	if inline := css.InlineStyles(l); len(inline) != 0 {
		t.Errorf("expected no declarations for nested value at color.text, are %v", inline)
	}
}

func TestInlineStylesEmptyLayer(t *testing.T) {
	if inline := css.InlineStyles(nil); len(inline) != 0 {
		t.Errorf("expected no declarations for the empty layer, are %v", inline)
	}
}

func TestInlineStylesFullTable(t *testing.T) {
	l := style.Layer{
		"typography": style.Layer{
			"lineHeight": "1.5",
			"fontSize":   "12pt",
		},
		"color": style.Layer{
			"gradient":   "linear-gradient(#e66465, #9198e5)",
			"background": "white",
			"text":       "black",
			"link":       "blue",
		},
	}
	assert.Equal(t, map[string]string{
		"lineHeight":               "1.5",
		"fontSize":                 "12pt",
		"background":               "linear-gradient(#e66465, #9198e5)",
		"backgroundColor":          "white",
		"color":                    "black",
		"--wp--style--color--link": "blue",
	}, css.InlineStyles(l))
}

func TestInlineStylesCompileVariableReferences(t *testing.T) {
	l := style.Layer{
		"color": style.Layer{"text": "var:color|primary"},
	}
	inline := css.InlineStyles(l)
	if inline["color"] != "var(--wp--color--primary)" {
		t.Errorf("expected reference to be compiled, is %q", inline["color"])
	}
}
