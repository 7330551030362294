package timecode

import (
	"fmt"
	"math"
)

// Rate is an immutable frame rate profile: a nominal frames-per-second
// value plus the integral timecode base and drop-frame constants derived
// from it. The zero Rate is not usable for conversion; it exists so Parse
// can infer a rate from the string's delimiter.
type Rate struct {
	fps     float64
	base    int  // frames in one timecode second, round(fps)
	drop    bool // drop-frame counting in effect
	dropped int  // frame numbers skipped per drop minute
	perMin  int  // timecode frames in a drop minute
	perDay  int  // real frames in 24 hours, the rollover modulus
}

// Rates commonly used in broadcast and film work. RateMillis counts
// thousandths of a second instead of picture frames.
var (
	Rate23976  = NewRate(23.976)
	Rate24     = NewRate(24)
	Rate25     = NewRate(25)
	Rate2997   = NewRate(29.97)
	Rate30     = NewRate(30)
	Rate50     = NewRate(50)
	Rate5994   = NewRate(59.94)
	Rate60     = NewRate(60)
	RateMillis = NewRate(1000)
)

// NewRate derives the full profile for a nominal frames-per-second
// value. Rates within half a hundredth of 29.97 or 59.94 count
// drop-frame; every other rate counts straight through. Non-positive
// rates yield the zero Rate.
func NewRate(fps float64) Rate {
	return newRate(fps, false)
}

// NewNonDropRate derives a profile that counts every frame number even
// at rates that normally drop. The timecode base is unchanged, so 29.97
// non-drop still counts 30 frames per timecode second and drifts behind
// the wall clock.
func NewNonDropRate(fps float64) Rate {
	return newRate(fps, true)
}

func newRate(fps float64, ndf bool) Rate {
	if fps <= 0 {
		return Rate{}
	}
	r := Rate{
		fps:    fps,
		base:   int(math.Round(fps)),
		perDay: int(math.Round(fps * 86400)),
	}
	switch int(math.Round(fps * 100)) {
	case 2997, 5994:
		r.drop = !ndf
	}
	if r.drop {
		r.dropped = 2
		if r.base == 60 {
			r.dropped = 4
		}
	}
	r.perMin = 60*r.base - r.dropped
	return r
}

// FPS returns the nominal frames per second.
func (r Rate) FPS() float64 { return r.fps }

// Base returns the number of frames in one timecode second.
func (r Rate) Base() int { return r.base }

// DropFrame reports whether the rate skips frame numbers to stay in
// step with the wall clock.
func (r Rate) DropFrame() bool { return r.drop }

// IsZero reports whether r is the unset Rate.
func (r Rate) IsZero() bool { return r == Rate{} }

func (r Rate) String() string {
	if r.drop {
		return fmt.Sprintf("%gDF", r.fps)
	}
	return fmt.Sprintf("%g", r.fps)
}

// framesIn floors an elapsed-seconds offset to the whole frame it lands
// in, rolled over into one day.
func (r Rate) framesIn(seconds float64) int {
	return r.wrap(int(seconds * r.fps))
}

// framesInMillis floors an elapsed-milliseconds offset to the whole
// frame it lands in, rolled over into one day. The conversion stays in
// integer arithmetic, with the rate scaled to frames per thousand
// seconds, so an offset sitting exactly on a frame boundary converts
// to that frame.
func (r Rate) framesInMillis(ms int) int {
	mfps := int64(math.Round(r.fps * 1000))
	return r.wrap(int(int64(ms) * mfps / 1000000))
}

// wrap rolls a real frame count over into [0, one day).
func (r Rate) wrap(n int) int {
	if r.perDay <= 0 {
		return n
	}
	n %= r.perDay
	if n < 0 {
		n += r.perDay
	}
	return n
}

// wrapDisplay rolls an inflated frame count over into one day of
// timecode numbers, which span further than real frames whenever
// drop-frame applies.
func (r Rate) wrapDisplay(n int) int {
	day := 86400 * r.base
	if day <= 0 {
		return n
	}
	n %= day
	if n < 0 {
		n += day
	}
	return n
}
