package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/blox/style"
)

// varNamespace is the namespace segment of compiled custom-property
// names. All output tokens are of the form "var(--wp--a--b)".
const varNamespace = "--wp--"

// varSegSep joins reference path segments in the output syntax.
const varSegSep = "--"

// ResolveVariable compiles a symbolic variable reference to a CSS
// custom-property reference:
//
//     "var:typography|fontSize"  =>  "var(--wp--typography--fontSize)"
//
// Values not starting with the reference marker pass through unchanged;
// literal colors, numbers and units are never touched. Resolution is
// purely lexical: the output is itself an indirect reference, to be
// resolved by a downstream rendering layer against its custom-property
// environment, never looked up here.
//
// An empty path after the marker compiles best-effort to "var(--wp--)".
// Segments are not validated; this is a documented pass-through policy.
func ResolveVariable(p style.Property) style.Property {
	if !p.IsVarRef() {
		return p
	}
	path := string(p)[len(style.VarRefPrefix):]
	segs := strings.Split(path, style.VarRefSep)
	return style.Property("var(" + varNamespace + strings.Join(segs, varSegSep) + ")")
}
