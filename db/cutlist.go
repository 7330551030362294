package db

import (
	"encoding/json"
	"time"

	"github.com/cbsinteractive/timecode"
	"github.com/pkg/errors"
)

// Cutlist is a named list of clip boundaries kept as canonical
// timecode strings, the only form that survives storage.
type Cutlist struct {
	ID        string              `json:"id,omitempty"`
	Name      string              `json:"name"`
	FPS       float64             `json:"fps,omitempty"`
	NonDrop   bool                `json:"ndf,omitempty"`
	Clippings []timecode.Clipping `json:"clippings"`
	CreatedAt time.Time           `json:"createdAt,omitempty"`
}

// Rate returns the cutlist's frame rate profile. A cutlist without an
// fps yields the zero Rate, which parses by inference.
func (c *Cutlist) Rate() timecode.Rate {
	if c.NonDrop {
		return timecode.NewNonDropRate(c.FPS)
	}
	return timecode.NewRate(c.FPS)
}

// Validate checks the cutlist is storable.
func (c *Cutlist) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.FPS < 0 {
		return errors.New("fps cannot be negative")
	}
	return nil
}

// Normalize parses every clipping at rate r, orders each pair, and
// rewrites both ends in canonical form. Impossible drop-frame numbers
// come out corrected, so a stored cutlist always round-trips.
func (c *Cutlist) Normalize(r timecode.Rate) error {
	for i, cl := range c.Clippings {
		start, err := timecode.Parse(cl.Start, r)
		if err != nil {
			return errors.Wrapf(err, "clipping %d start %q", i, cl.Start)
		}
		end, err := timecode.Parse(cl.End, r)
		if err != nil {
			return errors.Wrapf(err, "clipping %d end %q", i, cl.End)
		}
		if end.Before(start) {
			start, end = end, start
		}
		c.Clippings[i] = timecode.Clipping{Start: start.String(), End: end.String()}
	}
	return nil
}

// Splice converts the clippings into ranges of decimal seconds at the
// cutlist rate.
func (c *Cutlist) Splice() (timecode.Splice, error) {
	r := c.Rate()
	var s timecode.Splice
	for i, cl := range c.Clippings {
		start, err := timecode.Parse(cl.Start, r)
		if err != nil {
			return nil, errors.Wrapf(err, "clipping %d start %q", i, cl.Start)
		}
		end, err := timecode.Parse(cl.End, r)
		if err != nil {
			return nil, errors.Wrapf(err, "clipping %d end %q", i, cl.End)
		}
		s = append(s, timecode.Range{start.Seconds(), end.Seconds()})
	}
	return s, nil
}

func (c *Cutlist) marshal() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "encoding cutlist")
	}
	return string(data), nil
}

func unmarshalCutlist(data []byte) (*Cutlist, error) {
	cl := &Cutlist{}
	if err := json.Unmarshal(data, cl); err != nil {
		return nil, errors.Wrap(err, "decoding cutlist")
	}
	return cl, nil
}
