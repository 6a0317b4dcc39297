package templates

import (
	"errors"
	"testing"
)

func TestListStableOrder(t *testing.T) {
	first := List()
	second := List()

	if len(first) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("list order changed between calls")
		}
	}
	if first[0].ID != "modern_clean" {
		t.Fatalf("declaration order not preserved, first is %q", first[0].ID)
	}

	// Callers must not be able to poke the catalog.
	first[0].Name = "Hacked"
	if fresh := List(); fresh[0].Name == "Hacked" {
		t.Fatalf("List leaks the internal catalog")
	}
}

func TestGet(t *testing.T) {
	tpl, err := Get("executive")
	if err != nil {
		t.Fatalf("get executive: %v", err)
	}
	if tpl.Layout != LayoutTwoColumn || !tpl.IsPremium {
		t.Fatalf("unexpected executive template: %+v", tpl)
	}

	if _, err := Get("brutalist"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestIsAccessible(t *testing.T) {
	free, _ := Get("modern_clean")
	premium, _ := Get("executive")

	cases := []struct {
		name string
		tpl  Template
		tier string
		want bool
	}{
		{"free template free tier", free, TierFree, true},
		{"free template pro tier", free, TierPro, true},
		{"premium template free tier", premium, TierFree, false},
		{"premium template pro tier", premium, TierPro, true},
		{"premium template unknown tier", premium, "", false},
	}
	for _, tc := range cases {
		if got := IsAccessible(tc.tpl, tc.tier); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDefaultTemplateIsFree(t *testing.T) {
	tpl, err := Get("modern_clean")
	if err != nil {
		t.Fatalf("default template must exist: %v", err)
	}
	if tpl.IsPremium {
		t.Fatalf("default template must not be premium")
	}
}
