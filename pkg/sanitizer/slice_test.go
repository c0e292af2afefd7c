package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil slice", nil, []string{}},
		{"empty slice", []string{}, []string{}},
		{"dedupes after normalization", []string{"Screen", "  screen ", "SCREEN"}, []string{"screen"}},
		{"drops empties", []string{"", "  ", "coffee"}, []string{"coffee"}},
		{"preserves first-seen order", []string{"beamer", "whiteboard", "beamer"}, []string{"beamer", "whiteboard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStringSlice(tt.input, NormalizeAmenity)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStringSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Femke@Example.COM "); got != "femke@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestTrimAndCollapse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Boardroom   Delta  ", "Boardroom Delta"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := TrimAndCollapse(tt.input); got != tt.want {
			t.Errorf("TrimAndCollapse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
