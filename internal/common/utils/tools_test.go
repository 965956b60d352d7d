package utils

import (
	"testing"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 12 {
			t.Fatalf("expect id length 12, got %d (%s)", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"new":       "New",
		"screening": "Screening",
		"Offer":     "Offer",
		"hr":        "Hr",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0, 100); got != 100 {
		t.Errorf("ClampLimit(0, 100) = %d, want 100", got)
	}
	if got := ClampLimit(-5, 100); got != 100 {
		t.Errorf("ClampLimit(-5, 100) = %d, want 100", got)
	}
	if got := ClampLimit(20, 100); got != 20 {
		t.Errorf("ClampLimit(20, 100) = %d, want 20", got)
	}
	if got := ClampLimit(500, 100); got != 100 {
		t.Errorf("ClampLimit(500, 100) = %d, want 100", got)
	}
}
