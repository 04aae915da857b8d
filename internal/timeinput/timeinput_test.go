package timeinput_test

import (
	"testing"

	"github.com/avelis/countdowntab/internal/timeinput"
)

func TestMask(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "12:3"},
		{"1234", "12:34"},
		{"12345", "12:34"},
		{"ab1x2", "12"},
		{"12:34", "12:34"},
		{"99", "23"},
		{"2460", "23:59"},
		{"2360", "23:59"},
		{"0999", "09:59"},
		{"00:00", "00:00"},
	}
	for _, tt := range tests {
		if got := timeinput.Mask(tt.raw); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"7", "07:00"},
		{"14", "14:00"},
		{"12:3", "12:30"},
		{"12:34", "12:34"},
		// Still-invalid text is handed back unchanged; submission rejects it.
		{"1:2", "1:2"},
	}
	for _, tt := range tests {
		if got := timeinput.Finalize(tt.in); got != tt.want {
			t.Errorf("Finalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "23:59", "19:05"}
	invalid := []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "123:45"}

	for _, s := range valid {
		if !timeinput.Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if timeinput.Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestCanonical(t *testing.T) {
	if got := timeinput.Canonical("9:30"); got != "09:30" {
		t.Errorf("Canonical(9:30) = %q, want 09:30", got)
	}
	if got := timeinput.Canonical("19:30"); got != "19:30" {
		t.Errorf("Canonical(19:30) = %q, want 19:30", got)
	}
}
