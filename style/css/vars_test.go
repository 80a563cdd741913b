package css_test

import (
	"testing"

	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/blox/style/css"
)

func TestResolveVariableCompilesReference(t *testing.T) {
	out := css.ResolveVariable("var:typography|fontSize")
	if out != "var(--wp--typography--fontSize)" {
		t.Errorf("expected var(--wp--typography--fontSize), is %q", out)
	}
}

func TestResolveVariableIsIdentityOnLiterals(t *testing.T) {
	for _, literal := range []style.Property{
		"red", "#fff", "1.5", "12pt", "", "linear-gradient(#e66465, #9198e5)",
		"variable", // no marker, even though it nearly looks like one
	} {
		if out := css.ResolveVariable(literal); out != literal {
			t.Errorf("expected %q to pass through unchanged, is %q", literal, out)
		}
	}
}

func TestResolveVariableSingleSegment(t *testing.T) {
	out := css.ResolveVariable("var:spacing")
	if out != "var(--wp--spacing)" {
		t.Errorf("expected var(--wp--spacing), is %q", out)
	}
}

func TestResolveVariableEmptyPath(t *testing.T) {
	// documented pass-through policy: no validation, best-effort output
	out := css.ResolveVariable("var:")
	if out != "var(--wp--)" {
		t.Errorf("expected best-effort var(--wp--), is %q", out)
	}
}
