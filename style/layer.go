package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Layer is a nested dictionary of style properties, as configured for a
// document, a block type, or a single block. Entries are either leaf
// values (Property or plain string, e.g. a color or a variable reference)
// or sub-layers, e.g.
//
//     Layer{
//         "typography": Layer{"fontSize": Property("12pt")},
//         "color":      Layer{"text": "red"},
//     }
//
// Layers are host-owned configuration data; all operations on them are
// non-destructive. nil is a legal (empty) layer.
type Layer map[string]interface{}

// Attributes holds the attributes of a document block, e.g. a heading
// level. Attribute values are matched by selector predicates (see package
// selector) and are otherwise opaque to the styling engine.
type Attributes map[string]interface{}

// Property looks up a leaf value along a path of keys, e.g.
//
//     l.Property("color", "text")
//
// It returns the property and a flag indicating wether the path exists
// and denotes a leaf. Lookups never modify the layer.
func (l Layer) Property(path ...string) (Property, bool) {
	if len(path) == 0 {
		return NullStyle, false
	}
	it := l
	for _, key := range path[:len(path)-1] {
		sub, ok := asLayer(it[key])
		if !ok {
			return NullStyle, false
		}
		it = sub
	}
	if it == nil {
		return NullStyle, false
	}
	return asProperty(it[path[len(path)-1]])
}

// Sub returns the sub-layer along a path of keys, or nil if the path does
// not exist or denotes a leaf.
func (l Layer) Sub(path ...string) Layer {
	it := l
	for _, key := range path {
		sub, ok := asLayer(it[key])
		if !ok {
			return nil
		}
		it = sub
	}
	return it
}

// Set returns a copy of the layer with a property set at a path of keys,
// creating intermediate sub-layers as necessary. The receiver is left
// untouched.
func (l Layer) Set(value Property, path ...string) Layer {
	if len(path) == 0 {
		return l
	}
	c := l.Clone()
	if c == nil {
		c = Layer{}
	}
	it := c
	for _, key := range path[:len(path)-1] {
		sub, ok := asLayer(it[key])
		if !ok { // leaf or absent: replaced by a fresh sub-layer
			sub = Layer{}
		} else {
			sub = sub.Clone()
		}
		it[key] = sub
		it = sub
	}
	it[path[len(path)-1]] = value
	return c
}

// IsEmpty checks wether a layer contains any entries.
func (l Layer) IsEmpty() bool {
	return len(l) == 0
}

// Clone creates a deep copy of a layer. Leaf values are copied as-is.
func (l Layer) Clone() Layer {
	if l == nil {
		return nil
	}
	c := make(Layer, len(l))
	for k, v := range l {
		if sub, ok := asLayer(v); ok {
			c[k] = sub.Clone()
		} else {
			c[k] = v
		}
	}
	return c
}

// Merge merges style layers over this one, in ascending precedence: for
// any key present in two layers, the later layer's value wins. Sub-layers
// merge key-by-key recursively; at the leaves the winner replaces the
// loser entirely. A leaf colliding with a sub-layer replaces it as a
// whole, and vice versa.
//
// Merge returns a fresh layer; none of the inputs is modified. Merging
// nothing over a layer returns a plain copy, so that re-merging an
// already-flat layer is the identity.
func (l Layer) Merge(over ...Layer) Layer {
	m := l.Clone()
	if m == nil {
		m = Layer{}
	}
	for _, o := range over {
		for k, v := range o {
			sub, ok := asLayer(v)
			if !ok {
				m[k] = v // leaf wins over whatever is beneath k
				continue
			}
			if base, ok := asLayer(m[k]); ok {
				m[k] = base.Merge(sub)
			} else {
				m[k] = sub.Clone()
			}
		}
	}
	return m
}

// Cascade merges a sequence of style layers in ascending precedence,
// starting from an empty layer. Nil layers are legal inputs.
func Cascade(layers ...Layer) Layer {
	tracer().Debugf("styling: cascading %d layers", len(layers))
	return Layer(nil).Merge(layers...)
}

// Properties returns all leaf properties of a layer as key-value pairs,
// with the path segments of nested keys joined by '.', e.g.
//
//     {Key: "color.text", Value: "red"}
//
// Pairs are sorted by key.
func (l Layer) Properties() []KeyValue {
	var kvs []KeyValue
	l.collect(&kvs, "")
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs
}

func (l Layer) collect(kvs *[]KeyValue, prefix string) {
	for k, v := range l {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := asLayer(v); ok {
			sub.collect(kvs, key)
		} else if p, ok := asProperty(v); ok {
			*kvs = append(*kvs, KeyValue{key, p})
		}
	}
}

// Stringer for layers; used for debugging. Keys are sorted to keep the
// output stable.
func (l Layer) String() string {
	var sb strings.Builder
	l.write(&sb, "")
	return sb.String()
}

func (l Layer) write(sb *strings.Builder, indent string) {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString("{\n")
	for _, k := range keys {
		sb.WriteString(indent + "  " + k + ": ")
		if sub, ok := asLayer(l[k]); ok {
			sub.write(sb, indent+"  ")
		} else {
			p, _ := asProperty(l[k])
			sb.WriteString(fmt.Sprintf("%q\n", p))
		}
	}
	sb.WriteString(indent + "}\n")
}

// asLayer coerces a layer entry to a sub-layer. Hosts hand us layers
// decoded from configuration data, so plain nested maps are accepted
// alongside typed ones.
func asLayer(v interface{}) (Layer, bool) {
	switch sub := v.(type) {
	case Layer:
		return sub, true
	case map[string]interface{}:
		return Layer(sub), true
	}
	return nil, false
}

// asProperty coerces a leaf entry to a Property. Sub-layers are not
// leaves, even though Layer has a String method.
func asProperty(v interface{}) (Property, bool) {
	switch p := v.(type) {
	case Property:
		return p, true
	case string:
		return Property(p), true
	}
	return NullStyle, false
}
