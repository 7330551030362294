package timecode

import (
	"fmt"
	"math"
	"time"
)

// Range is a pair of decimal seconds defining a time interval
// starting at Range[0] and ending at Range[1]
type Range [2]float64

// Canon returns the range in proper order, where r[0] <= r[1]
func (r Range) Canon() Range {
	if r[0] > r[1] {
		r[0], r[1] = r[1], r[0]
	}
	return r
}

// Size returns the duration of the Range
func (r Range) Size() time.Duration {
	dx := r[1] - r[0]
	if dx < 0 {
		dx = -dx
	}
	return time.Duration(dx * float64(time.Second))
}

func (r Range) String() string {
	const s = float64(time.Second)
	return fmt.Sprintf("(%s-%s)", time.Duration(r[0]*s), time.Duration(r[1]*s))
}

// Timecode returns the end of the range as a timecode string at rate fr.
func (r Range) Timecode(fr Rate) string {
	return timecodeAt(r[1], fr)
}

// Timecodes returns the start and end of the range as timecode strings
// at rate fr, each rounded to the nearest display frame.
func (r Range) Timecodes(fr Rate) (string, string) {
	return timecodeAt(r[0], fr), timecodeAt(r[1], fr)
}

func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%f,%f]", r[0], r[1])), nil
}

// ParseRange parses a single timecode string into the Range starting at
// zero and ending on that timecode, for callers doing interval math
// over decimal seconds. The rate argument behaves as in Parse.
func ParseRange(s string, fr Rate) (Range, error) {
	t, err := Parse(s, fr)
	if err != nil {
		return Range{}, err
	}
	return Range{0, t.Seconds()}, nil
}

// timecodeAt converts a non-negative seconds offset into its canonical
// timecode string at rate fr. The offset is rounded to the nearest
// display frame, the inverse of the display-based Seconds a Timecode
// reports, so strings survive a trip through Range unchanged. Offsets
// landing on a skipped frame number snap up to the next valid one.
func timecodeAt(seconds float64, fr Rate) string {
	if seconds < 0 {
		seconds = 0
	}
	d := fr.wrapDisplay(int(math.Round(seconds * float64(fr.base))))
	return fr.format(fr.inflate(fr.deflate(d)), false)
}
