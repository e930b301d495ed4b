package immutable

import "testing"

func TestProperties_WrapPropertiesClone(t *testing.T) {
	input := map[string]any{
		"HEAD_FORMAT":  "1.0",
		"HEAD_CHARSET": "UTF-8",
	}

	p := WrapPropertiesClone(input)

	v, ok := p.Get("HEAD_FORMAT")
	if !ok {
		t.Fatal("expected Get(\"HEAD_FORMAT\") ok to be true")
	}
	if s, ok := v.String(); !ok || s != "1.0" {
		t.Errorf("expected HEAD_FORMAT %q, got %q (ok=%v)", "1.0", s, ok)
	}
}

func TestProperties_WrapPropertiesClone_Nil(t *testing.T) {
	p := WrapPropertiesClone(nil)

	if _, ok := p.Get("anything"); ok {
		t.Error("expected Get() on a nil-constructed Properties to return false")
	}
}

func TestProperties_WrapPropertiesClone_Isolation(t *testing.T) {
	input := map[string]any{"HEAD_FORMAT": "1.0"}
	p := WrapPropertiesClone(input)

	input["HEAD_FORMAT"] = "mutated"
	input["HEAD_NEW"] = "added"

	v, _ := p.Get("HEAD_FORMAT")
	if s, _ := v.String(); s != "1.0" {
		t.Errorf("mutation of source map leaked into Properties: got %q", s)
	}
	if _, ok := p.Get("HEAD_NEW"); ok {
		t.Error("key added to source map after cloning leaked into Properties")
	}
}

func TestProperties_Get_Missing(t *testing.T) {
	p := WrapPropertiesClone(map[string]any{"HEAD_FORMAT": "1.0"})

	if _, ok := p.Get("HEAD_NONEXISTENT"); ok {
		t.Error("expected Get() for a missing key to return false")
	}
}

func TestProperties_ZeroValue(t *testing.T) {
	var p Properties

	if _, ok := p.Get("anything"); ok {
		t.Error("expected Get() on the zero Properties to return false")
	}
}
