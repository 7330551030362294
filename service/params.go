package service

import (
	"github.com/cbsinteractive/timecode"
	"github.com/cbsinteractive/timecode/db"
)

// TimecodeRequest is one timecode operand. Exactly one of Timecode,
// Frame or Seconds carries the position. FPS and NDF select the rate;
// a zero FPS falls back to delimiter inference for strings and to the
// service default otherwise.
type TimecodeRequest struct {
	Timecode   string   `json:"timecode,omitempty"`
	Frame      *int     `json:"frame,omitempty"`
	Seconds    *float64 `json:"seconds,omitempty"`
	FPS        float64  `json:"fps,omitempty"`
	NDF        bool     `json:"ndf,omitempty"`
	Fractional bool     `json:"fractional,omitempty"`
}

// rate returns the requested rate profile, or the zero Rate when the
// request leaves fps unset.
func (q *TimecodeRequest) rate() timecode.Rate {
	if q.FPS == 0 {
		return timecode.Rate{}
	}
	if q.NDF {
		return timecode.NewNonDropRate(q.FPS)
	}
	return timecode.NewRate(q.FPS)
}

// ConvertRequest rebuilds the operand at a target rate.
type ConvertRequest struct {
	TimecodeRequest
	ToFPS float64 `json:"toFps"`
	ToNDF bool    `json:"toNdf,omitempty"`
}

// ArithRequest combines operands under one operation. The add and sub
// ops take a right operand; scale, divide, addframes and subframes
// take n; next and back take the left operand alone.
type ArithRequest struct {
	Op    string           `json:"op"`
	Left  TimecodeRequest  `json:"left"`
	Right *TimecodeRequest `json:"right,omitempty"`
	N     int              `json:"n,omitempty"`
}

// TimecodeReport is the canonical rendering of one timecode value.
type TimecodeReport struct {
	Timecode     string  `json:"timecode"`
	FPS          float64 `json:"fps"`
	DropFrame    bool    `json:"dropFrame"`
	Frame        int     `json:"frame"`
	DisplayFrame int     `json:"displayFrame"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	Frames       int     `json:"frames"`
	Millis       int     `json:"millis"`
}

func report(v timecode.Timecode) *TimecodeReport {
	hh, mm, ss, ff := v.Clock()
	return &TimecodeReport{
		Timecode:     v.String(),
		FPS:          v.Rate().FPS(),
		DropFrame:    v.Rate().DropFrame(),
		Frame:        v.Frame(),
		DisplayFrame: v.DisplayFrame(),
		Hours:        hh,
		Minutes:      mm,
		Seconds:      ss,
		Frames:       ff,
		Millis:       v.Millis(),
	}
}

// CutlistReport pairs a stored cutlist with interval data derived from
// its clippings.
type CutlistReport struct {
	*db.Cutlist
	DurationMillis int64             `json:"durationMillis"`
	Span           timecode.Clipping `json:"span"`
}

// Listing enumerates stored cutlist names.
type Listing struct {
	Cutlists []string `json:"cutlists"`
}

// Ack is the success envelope for operations with no richer body.
type Ack struct {
	Ok  bool   `json:"ok"`
	Rid uint64 `json:"rid"`
}
