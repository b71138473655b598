// Package dateutil formats and compares calendar days. All helpers are pure.
package dateutil

import (
	"regexp"
	"strconv"
	"time"
)

// KeyPattern is the canonical storage key layout.
const KeyPattern = "yyyy-MM-dd"

var tokenRe = regexp.MustCompile(`yyyy|MMMM|MM|dd`)

// Format renders t using pattern tokens: yyyy (4-digit year), MMMM (full
// month name), MM (2-digit month), dd (2-digit day). Everything else is
// copied verbatim.
func Format(t time.Time, pattern string) string {
	return tokenRe.ReplaceAllStringFunc(pattern, func(tok string) string {
		switch tok {
		case "yyyy":
			return strconv.Itoa(t.Year())
		case "MMMM":
			return t.Month().String()
		case "MM":
			return pad2(int(t.Month()))
		default:
			return pad2(t.Day())
		}
	})
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Key returns the "YYYY-MM-DD" storage key for t.
func Key(t time.Time) string {
	return Format(t, KeyPattern)
}

// ParseKey parses a "YYYY-MM-DD" key as local midnight.
func ParseKey(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// IsSameDay compares year, month and day only.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfWeek returns the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return AddDays(t, -int(t.Weekday()))
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
