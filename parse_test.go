package timecode

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		rate Rate
		want int
	}{
		{"zero", "00:00:00;00", Rate2997, 0},
		{"before-skip", "00:00:59;29", Rate2997, 1799},
		{"after-skip", "00:01:00;02", Rate2997, 1800},
		{"tenth-minute", "00:10:00;00", Rate2997, 17982},
		{"non-drop", "10:11:12:13", Rate24, 880141},
		{"non-drop-forced", "00:00:10:05", NewNonDropRate(29.97), 305},
		{"milliseconds", "01:02:03.500", RateMillis, 3723500},
		{"seconds-form", "00:01:30", Rate25, 2250},
		{"seconds-form-fractional", "00:00:01.5", Rate24, 36},
		{"partial-fields", "00:00:10", Rate24, 240},
		{"garbage-reads-zero", "not a timecode", Rate24, 0},
		{"empty-reads-zero", "", Rate24, 0},
		{"day-rollover", "25:00:00:00", Rate30, 108000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.in, tc.rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if have := v.Frame(); have != tc.want {
				t.Fatalf("have frame %v, want %v", have, tc.want)
			}
		})
	}
}

func TestParseInfersRate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		in       string
		wantFPS  float64
		wantDrop bool
		want     int
	}{
		{"semicolon-implies-drop", "00:01:00;02", 29.97, true, 1800},
		{"dot-implies-milliseconds", "00:00:01.250", 1000, false, 1250},
		{"colon-implies-film", "00:00:10:00", 24, false, 240},
		{"seconds-form-implies-film", "00:01:30", 24, false, 2160},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.in, Rate{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if have := v.Rate().FPS(); have != tc.wantFPS {
				t.Fatalf("have fps %v, want %v", have, tc.wantFPS)
			}
			if have := v.Rate().DropFrame(); have != tc.wantDrop {
				t.Fatalf("have drop %v, want %v", have, tc.wantDrop)
			}
			if have := v.Frame(); have != tc.want {
				t.Fatalf("have frame %v, want %v", have, tc.want)
			}
		})
	}
}

// Frame numbers that drop-frame counting skips do not exist on the
// timeline; parsing one lands on the same real frame as the first
// number that does exist.
func TestParseNormalizesSkippedNumbers(t *testing.T) {
	skipped, err := Parse("00:01:00;00", Rate2997)
	if err != nil {
		t.Fatal(err)
	}
	valid, err := Parse("00:01:00;02", Rate2997)
	if err != nil {
		t.Fatal(err)
	}
	if skipped.Frame() != valid.Frame() {
		t.Fatalf("have frame %v, want %v", skipped.Frame(), valid.Frame())
	}
	if have, want := skipped.String(), "00:01:00;02"; have != want {
		t.Fatalf("reformatted as %q, want %q", have, want)
	}
}

func TestParseFormatMismatch(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		rate Rate
	}{
		{"drop-string-non-drop-rate", "00:00:59;00", Rate24},
		{"non-drop-string-drop-rate", "00:00:59:00", Rate2997},
		{"seconds-string-drop-rate", "00:00:01.500", Rate5994},
		{"drop-string-forced-non-drop", "00:00:59;00", NewNonDropRate(29.97)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in, tc.rate); err != ErrFormatMismatch {
				t.Fatalf("have err %v, want %v", err, ErrFormatMismatch)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	rates := []Rate{Rate23976, Rate24, Rate25, Rate2997, Rate30, Rate50, Rate5994, Rate60, RateMillis, NewNonDropRate(29.97)}
	frames := []int{0, 1, 299, 1799, 1800, 3598, 17982, 19782, 2589407, 86399, 5178815}
	for _, r := range rates {
		for _, n := range frames {
			n := r.wrap(n)
			v, err := AtFrame(n, r)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Parse(v.String(), r)
			if err != nil {
				t.Fatalf("%v at %v: %v", v, r, err)
			}
			if back.Frame() != n {
				t.Fatalf("%v at %v: parsed back to frame %d, want %d", v, r, back.Frame(), n)
			}
		}
	}
}
