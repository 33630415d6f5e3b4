package util

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", " ", "a", "b"); got != "a" {
		t.Fatalf("want a got %q", got)
	}
	if got := FirstNonEmpty("", "  "); got != "" {
		t.Fatalf("want empty got %q", got)
	}
}

func TestTitleFromSlug(t *testing.T) {
	cases := map[string]string{
		"hopes_and_dreams":    "Hopes And Dreams",
		"steins_gate_0_bgm05": "Steins Gate 0 Bgm05",
		"__last__call_":       "Last Call",
		"go-go":               "Go-Go",
		"  ":                  "",
	}
	for in, want := range cases {
		if got := TitleFromSlug(in); got != want {
			t.Fatalf("%q => %q (want %q)", in, got, want)
		}
	}
}
