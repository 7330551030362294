package client

import "time"

// TimecodeRequest is one timecode operand. Exactly one of Timecode,
// Frame or Seconds carries the position; FPS and NDF select the rate.
type TimecodeRequest struct {
	Timecode   string   `json:"timecode,omitempty"`
	Frame      *int     `json:"frame,omitempty"`
	Seconds    *float64 `json:"seconds,omitempty"`
	FPS        float64  `json:"fps,omitempty"`
	NDF        bool     `json:"ndf,omitempty"`
	Fractional bool     `json:"fractional,omitempty"`
}

// Int returns a pointer for a literal frame operand.
func Int(n int) *int { return &n }

// Float64 returns a pointer for a literal seconds operand.
func Float64(f float64) *float64 { return &f }

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

// Clipping is a start and end timecode pair.
type Clipping struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Cutlist is a named list of clippings at one frame rate.
type Cutlist struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	FPS       float64    `json:"fps,omitempty"`
	NonDrop   bool       `json:"ndf,omitempty"`
	Clippings []Clipping `json:"clippings"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
}

// CutlistReport pairs a stored cutlist with interval data derived from
// its clippings.
type CutlistReport struct {
	Cutlist
	DurationMillis int64    `json:"durationMillis"`
	Span           Clipping `json:"span"`
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

// PlatformError is the well-known error response the service writes.
type PlatformError struct {
	Ok     bool   `json:"ok"`
	Status int    `json:"status"`
	Rid    uint64 `json:"rid"`
	Msg    string `json:"msg,omitempty"`
}
