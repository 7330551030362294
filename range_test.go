package timecode

import (
	"testing"
	"time"
)

func TestRangeCanon(t *testing.T) {
	if have, want := (Range{10, 5}).Canon(), (Range{5, 10}); have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have, want := (Range{5, 10}).Canon(), (Range{5, 10}); have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
}

func TestRangeSize(t *testing.T) {
	if have, want := (Range{5, 10}).Size(), 5*time.Second; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have, want := (Range{10, 5}).Size(), 5*time.Second; have != want {
		t.Fatalf("reversed: have %v, want %v", have, want)
	}
}

func TestRangeTimecodes(t *testing.T) {
	for _, tc := range []struct {
		name       string
		r          Range
		rate       Rate
		start, end string
	}{
		{"film", Range{5, 10}, Rate24, "00:00:05:00", "00:00:10:00"},
		{"drop", Range{10, 20}, Rate2997, "00:00:10;00", "00:00:20;00"},
		{"drop-snaps-up", Range{60, 120}, Rate2997, "00:01:00;02", "00:02:00;02"},
		{"milliseconds", Range{0, 1.5}, RateMillis, "00:00:00.000", "00:00:01.500"},
		{"negative-clamps", Range{-1, 5}, Rate24, "00:00:00:00", "00:00:05:00"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.r.Timecodes(tc.rate)
			if start != tc.start || end != tc.end {
				t.Fatalf("have %q %q, want %q %q", start, end, tc.start, tc.end)
			}
			if have := tc.r.Timecode(tc.rate); have != tc.end {
				t.Fatalf("end: have %q, want %q", have, tc.end)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("00:00:10:00", Rate24)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := r, (Range{0, 10}); have != want {
		t.Fatalf("have %v, want %v", have, want)
	}

	if _, err := ParseRange("00:00:10;00", Rate24); err != ErrFormatMismatch {
		t.Fatalf("have err %v, want %v", err, ErrFormatMismatch)
	}

	r, err = ParseRange("00:01:00;02", Rate2997)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := r.Timecode(Rate2997), "00:01:00;02"; have != want {
		t.Fatalf("round trip: have %q, want %q", have, want)
	}
}

func TestRangeMarshalJSON(t *testing.T) {
	data, err := (Range{5, 10}).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if have, want := string(data), "[5.000000,10.000000]"; have != want {
		t.Fatalf("have %s, want %s", have, want)
	}
}
