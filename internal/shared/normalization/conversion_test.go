package normalization

import "testing"

func TestAsIntAcceptsNumericStrings(t *testing.T) {
	if got := AsInt("45"); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
	if got := AsInt(" 60 "); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
	if got := AsInt("45.7"); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
	if got := AsInt(float64(30)); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
	if got := AsInt("not a number"); got != 0 {
		t.Fatalf("expected 0 for garbage, got %d", got)
	}
	if got := AsInt(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
}

func TestAsFloat64(t *testing.T) {
	if got := AsFloat64("12.50"); got != 12.5 {
		t.Fatalf("expected 12.5, got %f", got)
	}
	if got := AsFloat64(8); got != 8 {
		t.Fatalf("expected 8, got %f", got)
	}
	if got := AsFloat64(map[string]any{}); got != 0 {
		t.Fatalf("expected 0 for map, got %f", got)
	}
}

func TestAsMapRejectsNonObjects(t *testing.T) {
	if got := AsMap("12h00 - 14h30"); got != nil {
		t.Fatalf("expected nil for string, got %v", got)
	}
	value := map[string]any{"midi": "12h00"}
	if got := AsMap(value); got == nil {
		t.Fatal("expected map back")
	}
}

func TestAsStringSlice(t *testing.T) {
	got := AsStringSlice([]any{" Français ", "", "Fusion"})
	if len(got) != 2 || got[0] != "Français" || got[1] != "Fusion" {
		t.Fatalf("unexpected slice: %v", got)
	}
	if AsStringSlice(42) != nil {
		t.Fatal("expected nil for non-slice")
	}
}

func TestNormalizeEntity(t *testing.T) {
	cases := map[string]string{
		"menu":       "menuitems",
		"MENU_ITEM":  "menuitems",
		"menu-items": "menuitems",
		"Restaurant": "restaurants",
		"images":     "images",
		"-":          "",
	}
	for raw, want := range cases {
		if got := NormalizeEntity(raw); got != want {
			t.Fatalf("NormalizeEntity(%q) = %q, want %q", raw, got, want)
		}
	}
	if !IsValidEntity("menu_items") {
		t.Fatal("expected menu_items to be valid")
	}
	if IsValidEntity("tables") {
		t.Fatal("expected tables to be unknown")
	}
}
