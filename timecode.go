// Package timecode converts between real frame counts and SMPTE
// timecode strings, including drop-frame and millisecond rates, and
// provides arithmetic and comparison over timecode values.
//
// A Timecode stores the real (never inflated) frame count together
// with its Rate; display fields are derived on demand. Values roll
// over every 24 hours.
package timecode

import (
	"errors"
	"time"
)

var (
	// ErrNegativeFrame is returned by mutations that would place the
	// real frame count below zero. The value is left unmodified.
	ErrNegativeFrame = errors.New("negative frame count")

	// ErrFormatMismatch is returned when a string's delimiter
	// contradicts the drop-frame flag of the rate it is parsed at.
	ErrFormatMismatch = errors.New("timecode delimiter does not match frame rate")
)

// Timecode is a frame-accurate clock value at a fixed frame rate.
type Timecode struct {
	frame      int
	rate       Rate
	fractional bool
}

// New returns the zero timecode at rate r.
func New(r Rate) Timecode {
	return Timecode{rate: r}
}

// AtFrame returns the timecode at a real frame offset, rolled over
// into one day. Negative offsets return ErrNegativeFrame.
func AtFrame(n int, r Rate) (Timecode, error) {
	t := New(r)
	if err := t.SetFrame(n); err != nil {
		return Timecode{}, err
	}
	return t, nil
}

// AtSeconds returns the timecode at an elapsed-seconds offset, floored
// to the whole frame the offset lands in. At 29.97, ten seconds is
// frame 299, not 300.
func AtSeconds(seconds float64, r Rate) (Timecode, error) {
	if seconds < 0 {
		return Timecode{}, ErrNegativeFrame
	}
	return Timecode{rate: r, frame: r.framesIn(seconds)}, nil
}

// Frame returns the real frame count.
func (t Timecode) Frame() int { return t.frame }

// DisplayFrame returns the inflated frame number the timecode string
// displays, equal to Frame at non-drop rates.
func (t Timecode) DisplayFrame() int { return t.rate.inflate(t.frame) }

// Rate returns the frame rate profile.
func (t Timecode) Rate() Rate { return t.rate }

// Clock returns the displayed hour, minute, second and frame fields.
func (t Timecode) Clock() (hh, mm, ss, ff int) {
	f := t.rate.split(t.DisplayFrame())
	return f.hh, f.mm, f.ss, f.ff
}

// Millis returns the elapsed display time in whole milliseconds.
// Values at different rates that denote the same instant report the
// same Millis, which is the basis for comparison and arithmetic.
func (t Timecode) Millis() int {
	return t.rate.split(t.DisplayFrame()).total
}

// Seconds returns the elapsed display time in decimal seconds.
func (t Timecode) Seconds() float64 {
	return float64(t.Millis()) / 1000
}

// Duration returns the elapsed display time as a time.Duration.
func (t Timecode) Duration() time.Duration {
	return time.Duration(t.Millis()) * time.Millisecond
}

// String returns the canonical timecode string, such as 00:01:00;02 at
// drop-frame rates or 00:00:01.500 in millisecond display.
func (t Timecode) String() string {
	return t.rate.format(t.DisplayFrame(), t.fractional)
}

// SetFractional switches the string form to fractional seconds at
// non-drop rates. Drop-frame strings keep their frame field.
func (t *Timecode) SetFractional(on bool) { t.fractional = on }

// Compare orders two timecodes by elapsed milliseconds, returning -1,
// 0 or 1. The rates need not match.
func (t Timecode) Compare(o Timecode) int {
	a, b := t.Millis(), o.Millis()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether two timecodes denote the same instant,
// regardless of rate.
func (t Timecode) Equal(o Timecode) bool { return t.Compare(o) == 0 }

// Before reports whether t is earlier than o.
func (t Timecode) Before(o Timecode) bool { return t.Compare(o) < 0 }

// After reports whether t is later than o.
func (t Timecode) After(o Timecode) bool { return t.Compare(o) > 0 }

// Add returns t advanced by o's elapsed time, counted at t's rate.
// Mixing rates is well defined but floors into t's frame unit.
func (t Timecode) Add(o Timecode) (Timecode, error) {
	return t.atMillis(t.Millis() + o.Millis())
}

// Sub returns t rewound by o's elapsed time, counted at t's rate.
// Going below zero returns ErrNegativeFrame.
func (t Timecode) Sub(o Timecode) (Timecode, error) {
	return t.atMillis(t.Millis() - o.Millis())
}

// Scale returns t with its elapsed time multiplied by n.
func (t Timecode) Scale(n int) (Timecode, error) {
	return t.atMillis(t.Millis() * n)
}

// Divide returns t with its elapsed time split n ways.
func (t Timecode) Divide(n int) (Timecode, error) {
	return t.atMillis(t.Millis() / n)
}

func (t Timecode) atMillis(ms int) (Timecode, error) {
	if ms < 0 {
		return t, ErrNegativeFrame
	}
	t.frame = t.rate.framesInMillis(ms)
	return t, nil
}

// SetFrame replaces the real frame count, rolling over past the end of
// the day. Negative counts return ErrNegativeFrame and leave the value
// unmodified.
func (t *Timecode) SetFrame(n int) error {
	if n < 0 {
		return ErrNegativeFrame
	}
	t.frame = t.rate.wrap(n)
	return nil
}

// AddFrames advances the real frame count by n.
func (t *Timecode) AddFrames(n int) error {
	return t.SetFrame(t.frame + n)
}

// SubFrames rewinds the real frame count by n.
func (t *Timecode) SubFrames(n int) error {
	return t.SetFrame(t.frame - n)
}

// MultFrames multiplies the real frame count by n.
func (t *Timecode) MultFrames(n int) error {
	return t.SetFrame(t.frame * n)
}

// DivFrames divides the real frame count by n.
func (t *Timecode) DivFrames(n int) error {
	return t.SetFrame(t.frame / n)
}

// Next advances one frame, rolling over at the end of the day.
func (t *Timecode) Next() {
	t.frame = t.rate.wrap(t.frame + 1)
}

// Back rewinds one frame, stopping at zero.
func (t *Timecode) Back() {
	if t.frame > 0 {
		t.frame--
	}
}

// MarshalText encodes the canonical string form.
func (t Timecode) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the canonical string form at t's rate,
// inferring the rate from the delimiter when t has none.
func (t *Timecode) UnmarshalText(p []byte) error {
	v, err := Parse(string(p), t.rate)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
