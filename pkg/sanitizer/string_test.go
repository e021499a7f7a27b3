package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"no change", "alice smith", "alice smith"},
		{"surrounding whitespace", "  alice smith  ", "alice smith"},
		{"interior run", "alice   smith", "alice smith"},
		{"tabs and newlines", "alice\t\n smith", "alice smith"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrimAndNormalize(tc.input); got != tc.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Grace   Hopper "); got != "Grace Hopper" {
		t.Errorf("unexpected result %q", got)
	}
}

func TestNormalizeMuseum(t *testing.T) {
	if got := NormalizeMuseum(" National  Gallery"); got != "National Gallery" {
		t.Errorf("unexpected result %q", got)
	}
}
