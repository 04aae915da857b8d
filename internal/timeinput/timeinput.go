// Package timeinput turns free-form keystroke input into a canonical HH:MM
// 24-hour string. Mask runs on every change and produces a live-typing mask;
// Finalize runs on focus loss and expands partial input. Neither silently
// clears invalid text: submission re-validates with Valid and rejects there.
package timeinput

import (
	"regexp"
	"strconv"
	"strings"
)

// lenient accepts a single-digit hour ("9:30"); Canonical pads it before storage.
var lenient = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Mask normalizes raw input after each keystroke: digits only, at most four of
// them, hour clamped to 23, a colon inserted once a third digit appears, and
// minutes clamped to 59 when all four digits are present.
func Mask(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	v := digits.String()
	if len(v) > 4 {
		v = v[:4]
	}

	if len(v) >= 2 {
		if h, _ := strconv.Atoi(v[:2]); h > 23 {
			v = "23" + v[2:]
		}
	}

	if len(v) > 2 {
		v = v[:2] + ":" + v[2:]
	}

	if len(v) == 5 {
		if m, _ := strconv.Atoi(v[3:5]); m > 59 {
			v = v[:3] + "59"
		}
	}
	return v
}

// Finalize expands partial input when editing ends: "7" becomes "07:00",
// "14" becomes "14:00", "12:3" becomes "12:30". Input that still fails the
// time pattern is returned unchanged for the caller to reject at submission.
func Finalize(v string) string {
	switch len(v) {
	case 1:
		v = "0" + v + ":00"
	case 2:
		v = v + ":00"
	case 4:
		v = v + "0"
	}
	return v
}

// Valid reports whether s is an acceptable HH:MM 24-hour time at submission.
func Valid(s string) bool {
	return lenient.MatchString(s)
}

// Canonical zero-pads a single-digit hour so the stored value always carries
// two hour digits. The input must already satisfy Valid.
func Canonical(s string) string {
	if i := strings.IndexByte(s, ':'); i == 1 {
		return "0" + s
	}
	return s
}
