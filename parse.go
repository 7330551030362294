package timecode

import (
	"fmt"
	"math"
	"strings"
)

// Parse converts a timecode string into a value at rate r. Three forms
// are accepted: HH:MM:SS:FF, HH:MM:SS;FF for drop-frame, and HH:MM:SS
// where the seconds may carry a fractional millisecond part. A zero r
// infers the rate from the string itself: ";" means 29.97 drop-frame,
// a fractional seconds form means milliseconds, anything else 24.
//
// Parsing is best effort: missing or malformed fields read as zero and
// out-of-range fields roll over rather than failing. The one rejected
// input is a delimiter that contradicts the rate, like a ";" string at
// a non-drop rate, which returns ErrFormatMismatch.
func Parse(s string, r Rate) (Timecode, error) {
	drop := strings.ContainsRune(s, ';')
	framed := strings.Count(s, ":") >= 3
	if r.IsZero() {
		switch {
		case drop:
			r = Rate2997
		case !framed && strings.ContainsRune(s, '.'):
			r = RateMillis
		default:
			r = Rate24
		}
	}
	if drop != r.drop {
		return Timecode{}, ErrFormatMismatch
	}
	var (
		h, m, sec float64
		ff        int
	)
	switch {
	case drop:
		fmt.Sscanf(s, "%f:%f:%f;%d", &h, &m, &sec, &ff)
	case framed:
		fmt.Sscanf(s, "%f:%f:%f:%d", &h, &m, &sec, &ff)
	default:
		fmt.Sscanf(s, "%f:%f:%f", &h, &m, &sec)
	}
	display := int(math.Round((h*3600+m*60+sec)*float64(r.base))) + ff
	return Timecode{rate: r, frame: r.deflate(display)}, nil
}
