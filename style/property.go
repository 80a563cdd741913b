package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'blox.style'
func tracer() tracing.Trace {
	return tracing.Select("blox.style")
}

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// A property value may be a symbolic variable reference instead of a
// literal (see IsVarRef); references are compiled to output syntax by
// package css, never resolved to concrete values by this module.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// VarRefPrefix is the reserved marker denoting a symbolic variable
// reference, e.g. "var:typography|fontSize".
const VarRefPrefix = "var:"

// VarRefSep separates the path segments of a variable reference.
const VarRefSep = "|"

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsVarRef denotes if a property value is a symbolic variable reference
// rather than a literal value.
func (p Property) IsVarRef() bool {
	return strings.HasPrefix(string(p), VarRefPrefix)
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}
