package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Monday", "Monday"},
		{"monday", "Monday"},
		{"MONDAY", "Monday"},
		{"  tuesday ", "Tuesday"},
		{"sUnDaY", "Sunday"},
		{"Mondag", ""},
		{"", ""},
		{"Mon", ""},
	}

	for _, tt := range tests {
		if got := NormalizeWeekday(tt.input); got != tt.want {
			t.Errorf("NormalizeWeekday(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeWeekdays(t *testing.T) {
	got := NormalizeWeekdays([]string{"monday", "WEDNESDAY", "monday", "notaday", ""})
	want := []string{"Monday", "Wednesday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeWeekdays = %v, want %v", got, want)
	}
}
