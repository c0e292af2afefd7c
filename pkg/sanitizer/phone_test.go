package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dutch mobile with prefix", "+31612345678", "+31612345678"},
		{"dutch mobile national form", "0612345678", "+31612345678"},
		{"dutch mobile with spaces", " 06 1234 5678 ", "+31612345678"},
		{"belgian number with prefix", "+32470123456", "+32470123456"},
		{"german number with prefix", "+4915123456789", "+4915123456789"},
		{"empty", "", ""},
		{"garbage", "not-a-phone", ""},
		{"too short", "+3161", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("0612345678")
	twice := NormalizePhone(once)
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}
