package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/blox/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'blox.style'
func tracer() tracing.Trace {
	return tracing.Select("blox.style")
}

// Kind is a type for the matching discipline of a selector.
type Kind uint8

const (
	// Exact selectors match a block-type identifier verbatim, e.g.
	// "core/paragraph".
	Exact Kind = iota
	// Variant selectors carry a block-type identifier plus a variant
	// suffix, e.g. "core/heading/h2", and match when the block type equals
	// the identifier part and the rule's predicate holds for the block's
	// attributes.
	Variant
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Variant:
		return "variant"
	}
	return "?"
}

// Predicate decides wether a variant selector applies to a block, given
// the block's attributes.
type Predicate func(attrs style.Attributes) bool

// Rule associates a selector with a style layer.
type Rule struct {
	Sel    string      // selector string, e.g. "core/heading/h2"
	Kind   Kind        // matching discipline
	Match  Predicate   // for Kind == Variant; never called for Exact
	Styles style.Layer // style declarations for matching blocks
}

// Matches checks wether this rule applies to a block of a given type with
// given attributes.
func (r Rule) Matches(typeID string, attrs style.Attributes) bool {
	switch r.Kind {
	case Exact:
		return r.Sel == typeID
	case Variant:
		if !strings.HasPrefix(r.Sel, typeID+"/") {
			return false
		}
		return r.Match != nil && r.Match(attrs)
	}
	return false
}

// Map holds the per-block-type style configuration of a document: an
// ordered list of selector rules. Rules are kept in declaration order,
// which is significant: when several rules match one block, they merge in
// declaration order and a later-declared rule wins. A Go map would leave
// this tie-break to chance.
//
// nil is a legal (empty) map.
type Map struct {
	rules []Rule
}

// NewMap creates an empty selector map.
func NewMap() *Map {
	return &Map{}
}

// Put appends an exact-match rule for a block-type identifier.
// It returns the map to allow for chaining.
func (m *Map) Put(sel string, styles style.Layer) *Map {
	m.rules = append(m.rules, Rule{Sel: sel, Kind: Exact, Styles: styles})
	return m
}

// PutVariant appends a variant rule. sel is the block-type identifier
// followed by a variant suffix ("core/heading/h2"); match is evaluated
// against a block's attributes.
// It returns the map to allow for chaining.
func (m *Map) PutVariant(sel string, match Predicate, styles style.Layer) *Map {
	m.rules = append(m.rules, Rule{Sel: sel, Kind: Variant, Match: match, Styles: styles})
	return m
}

// Size returns the number of rules.
func (m *Map) Size() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// Rules returns all rules of the map, in declaration order.
func (m *Map) Rules() []Rule {
	if m == nil {
		return nil
	}
	r := make([]Rule, len(m.rules))
	copy(r, m.rules)
	return r
}

// MatchingStyles returns the style layers of all rules applying to a
// block of a given type with given attributes, in declaration order.
// Callers merging the result in this order get the documented tie-break:
// the rule declared last wins.
func (m *Map) MatchingStyles(typeID string, attrs style.Attributes) []style.Layer {
	if m == nil {
		return nil
	}
	var layers []style.Layer
	for _, r := range m.rules {
		if r.Matches(typeID, attrs) {
			tracer().P("block", typeID).Debugf("styling: selector %s applies", r.Sel)
			layers = append(layers, r.Styles)
		}
	}
	return layers
}

func (m *Map) String() string {
	if m == nil {
		return "Selectors = {}"
	}
	s := "Selectors = {\n"
	for _, r := range m.rules {
		s += fmt.Sprintf("  %s (%s)\n", r.Sel, r.Kind)
	}
	s += "}"
	return s
}
