package style_test

import (
	"reflect"
	"testing"

	"github.com/npillmayer/blox/style"
)

func TestLayerPropertyLookup(t *testing.T) {
	l := style.Layer{
		"typography": style.Layer{"fontSize": style.Property("12pt")},
		"color":      style.Layer{"text": "red"},
	}
	p, ok := l.Property("typography", "fontSize")
	if !ok || p != "12pt" {
		t.Errorf("expected typography.fontSize to be 12pt, is %q (%v)", p, ok)
	}
	p, ok = l.Property("color", "text") // plain string leaf coerces
	if !ok || p != "red" {
		t.Errorf("expected color.text to be red, is %q (%v)", p, ok)
	}
	if _, ok = l.Property("color", "background"); ok {
		t.Error("expected color.background to be absent, isn't")
	}
	if _, ok = l.Property("color"); ok {
		t.Error("expected color to not be a leaf, is")
	}
	if _, ok = style.Layer(nil).Property("color", "text"); ok {
		t.Error("expected lookup in nil layer to fail, doesn't")
	}
}

func TestLayerLookupFromDecodedConfig(t *testing.T) {
	// hosts hand us plain nested maps, e.g. decoded from JSON
	l := style.Layer{
		"color": map[string]interface{}{"text": "blue"},
	}
	p, ok := l.Property("color", "text")
	if !ok || p != "blue" {
		t.Errorf("expected color.text to be blue, is %q (%v)", p, ok)
	}
}

func TestLayerSetDoesNotMutate(t *testing.T) {
	l := style.Layer{"color": style.Layer{"text": "red"}}
	l2 := l.Set("16pt", "typography", "fontSize")
	if _, ok := l.Property("typography", "fontSize"); ok {
		t.Error("expected receiver to be untouched by Set, isn't")
	}
	p, ok := l2.Property("typography", "fontSize")
	if !ok || p != "16pt" {
		t.Errorf("expected copy to hold typography.fontSize = 16pt, is %q (%v)", p, ok)
	}
	if p, _ := l2.Property("color", "text"); p != "red" {
		t.Errorf("expected copy to keep color.text = red, is %q", p)
	}
}

func TestLayerMergePrecedence(t *testing.T) {
	lo := style.Layer{"color": style.Layer{"text": "red"}}
	hi := style.Layer{"color": style.Layer{"text": "purple"}}
	m := lo.Merge(hi)
	if p, _ := m.Property("color", "text"); p != "purple" {
		t.Errorf("expected higher layer to win, color.text is %q", p)
	}
	if p, _ := lo.Property("color", "text"); p != "red" {
		t.Errorf("expected input layer to be untouched, color.text is %q", p)
	}
}

func TestLayerMergeKeepsNonCollidingKeys(t *testing.T) {
	global := style.Layer{"color": style.Layer{"text": "red"}}
	local := style.Layer{"color": style.Layer{"background": "white"}}
	m := global.Merge(local)
	if p, _ := m.Property("color", "text"); p != "red" {
		t.Errorf("expected color.text = red to survive, is %q", p)
	}
	if p, _ := m.Property("color", "background"); p != "white" {
		t.Errorf("expected color.background = white to survive, is %q", p)
	}
}

func TestLayerMergeLeafReplacesSubLayer(t *testing.T) {
	lo := style.Layer{"color": style.Layer{"text": "red", "background": "white"}}
	hi := style.Layer{"color": "inherit"} // leaf shadows the whole group
	m := lo.Merge(hi)
	if _, ok := m.Property("color", "text"); ok {
		t.Error("expected sub-layer beneath a winning leaf to be gone, isn't")
	}
	if p, _ := m.Property("color"); p != "inherit" {
		t.Errorf("expected color to be the leaf inherit, is %q", p)
	}
}

func TestCascadeIsIdentityOnFlatLayer(t *testing.T) {
	flat := style.Layer{
		"typography": style.Layer{"fontSize": style.Property("12pt")},
		"color":      style.Layer{"text": style.Property("red")},
	}
	again := style.Cascade(nil, nil, flat)
	if !reflect.DeepEqual(flat, again) {
		t.Errorf("expected re-cascading a flat layer to be the identity, got %v", again)
	}
}

func TestLayerProperties(t *testing.T) {
	l := style.Layer{
		"typography": style.Layer{"fontSize": style.Property("12pt")},
		"color":      style.Layer{"text": "red"},
	}
	kvs := l.Properties()
	if len(kvs) != 2 {
		t.Fatalf("expected 2 leaf properties, are %d", len(kvs))
	}
	if kvs[0].Key != "color.text" || kvs[0].Value != "red" {
		t.Errorf("expected first pair color.text = red, is %v", kvs[0])
	}
	if kvs[1].Key != "typography.fontSize" || kvs[1].Value != "12pt" {
		t.Errorf("expected second pair typography.fontSize = 12pt, is %v", kvs[1])
	}
}

func TestLayerCloneIsDeep(t *testing.T) {
	l := style.Layer{"color": style.Layer{"text": "red"}}
	c := l.Clone()
	c.Sub("color")["text"] = "blue"
	if p, _ := l.Property("color", "text"); p != "red" {
		t.Errorf("expected original to be isolated from clone, color.text is %q", p)
	}
}
