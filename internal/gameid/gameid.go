// Package gameid reversibly encodes a UTC calendar date as a short
// URL-safe token. Year, month, and day are each rendered as their own
// fixed-width base-62 digit group and concatenated, so a token always
// carries exactly three fields of a known shape: anything of the wrong
// length, or whose groups decode outside their field's range, is
// rejected structurally rather than reinterpreted.
package gameid

import (
	"strings"
	"time"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	base     = int64(len(alphabet))

	yearWidth  = 4
	monthWidth = 2
	dayWidth   = 2
	// tokenLength is the exact token size: three fixed-width groups,
	// which also satisfies the 8-character minimum.
	tokenLength = yearWidth + monthWidth + dayWidth

	// MinYear and MaxYear bound the calendar years Encode/Decode accept.
	MinYear = 1970
	MaxYear = 2100
)

var digitValue = func() map[rune]int64 {
	m := make(map[rune]int64, len(alphabet))
	for i, r := range alphabet {
		m[r] = int64(i)
	}
	return m
}()

// Encode renders (year, month, day) as three fixed-width base-62 digit
// groups, concatenated into an 8-character token.
func Encode(d time.Time) string {
	y, m, day := d.UTC().Date()
	var b strings.Builder
	b.Grow(tokenLength)
	b.WriteString(toDigits(int64(y), yearWidth))
	b.WriteString(toDigits(int64(m), monthWidth))
	b.WriteString(toDigits(int64(day), dayWidth))
	return b.String()
}

// Decode reverses Encode. It returns the UTC midnight of the encoded
// calendar date and true, or the zero time and false if tok is not an
// exact three-group token, contains characters outside the alphabet, or
// its fields are out of range or do not form a real calendar date.
func Decode(tok string) (time.Time, bool) {
	if len(tok) != tokenLength {
		return time.Time{}, false
	}

	year, ok := fromDigits(tok[:yearWidth])
	if !ok {
		return time.Time{}, false
	}
	month, ok := fromDigits(tok[yearWidth : yearWidth+monthWidth])
	if !ok {
		return time.Time{}, false
	}
	day, ok := fromDigits(tok[yearWidth+monthWidth:])
	if !ok {
		return time.Time{}, false
	}

	if year < MinYear || year > MaxYear {
		return time.Time{}, false
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	candidate := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 30 -> Mar 2); reject
	// anything that didn't round-trip, since that means it wasn't a real
	// calendar date.
	if int64(candidate.Year()) != year || int64(candidate.Month()) != month || int64(candidate.Day()) != day {
		return time.Time{}, false
	}
	return candidate, true
}

// toDigits renders v as exactly width base-62 digits, most significant
// first, left-padded with the zero digit.
func toDigits(v int64, width int) string {
	digits := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = alphabet[v%base]
		v /= base
	}
	return string(digits)
}

func fromDigits(s string) (int64, bool) {
	var v int64
	for _, r := range s {
		d, ok := digitValue[r]
		if !ok {
			return 0, false
		}
		v = v*base + d
	}
	return v, true
}
