package gameid

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []time.Time{
		date(1970, time.January, 1),
		date(2026, time.July, 31),
		date(2100, time.December, 31),
		date(2024, time.February, 29),
	}
	for _, d := range cases {
		tok := Encode(d)
		if len(tok) != tokenLength {
			t.Fatalf("Encode(%v) produced token of length %d, want %d: %q", d, len(tok), tokenLength, tok)
		}
		got, ok := Decode(tok)
		if !ok {
			t.Fatalf("Decode(%q) failed for %v", tok, d)
		}
		if !got.Equal(d) {
			t.Fatalf("round trip mismatch: encoded %v, decoded %v", d, got)
		}
	}
}

func TestEncodeIsURLSafe(t *testing.T) {
	tok := Encode(date(2026, time.July, 31))
	for _, r := range tok {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("token %q contains character %q outside the URL-safe alphabet", tok, r)
		}
	}
}

func TestDecodeRejectsEmpty(t *testing.T) {
	if _, ok := Decode(""); ok {
		t.Fatal("expected empty string to be rejected")
	}
}

func TestDecodeRejectsMalformedAlphabet(t *testing.T) {
	if _, ok := Decode("!!!!!!!!"); ok {
		t.Fatal("expected non-alphabet characters to be rejected")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	tok := Encode(date(2026, time.July, 31))
	if _, ok := Decode(tok[:tokenLength-1]); ok {
		t.Fatal("expected a truncated token to be rejected")
	}
	if _, ok := Decode(tok + "A"); ok {
		t.Fatal("expected an overlong token to be rejected")
	}
}

// TestDecodeRejectsSingleNumberEncoding: a scalar rendered as one
// 8-digit group rather than three fields must not decode; its year
// group comes out far below the supported range.
func TestDecodeRejectsSingleNumberEncoding(t *testing.T) {
	for _, n := range []int64{0, 1, 12345, 999999} {
		tok := toDigits(n, tokenLength)
		if _, ok := Decode(tok); ok {
			t.Fatalf("expected single-number token %q (from %d) to be rejected", tok, n)
		}
	}
}

func TestDecodeRejectsImpossibleCalendarDate(t *testing.T) {
	// February 30th never exists; build the three groups directly so the
	// token is well-formed but names a day time.Date normalizes away.
	tok := toDigits(2026, yearWidth) + toDigits(2, monthWidth) + toDigits(30, dayWidth)
	if _, ok := Decode(tok); ok {
		t.Fatal("expected an impossible calendar date to be rejected")
	}
}

func TestDecodeRejectsOutOfRangeYear(t *testing.T) {
	tok := toDigits(3000, yearWidth) + toDigits(1, monthWidth) + toDigits(1, dayWidth)
	if _, ok := Decode(tok); ok {
		t.Fatal("expected a year outside [1970, 2100] to be rejected")
	}
}

func TestDecodeRejectsOutOfRangeMonthAndDay(t *testing.T) {
	badMonth := toDigits(2026, yearWidth) + toDigits(13, monthWidth) + toDigits(1, dayWidth)
	if _, ok := Decode(badMonth); ok {
		t.Fatal("expected month 13 to be rejected")
	}
	badDay := toDigits(2026, yearWidth) + toDigits(1, monthWidth) + toDigits(32, dayWidth)
	if _, ok := Decode(badDay); ok {
		t.Fatal("expected day 32 to be rejected")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	d := date(2026, time.July, 31)
	if Encode(d) != Encode(d) {
		t.Fatal("Encode is not deterministic for the same date")
	}
}

func TestDistinctDatesProduceDistinctTokens(t *testing.T) {
	a := Encode(date(2026, time.July, 31))
	b := Encode(date(2026, time.August, 1))
	if a == b {
		t.Fatal("distinct dates encoded to the same token")
	}
}
