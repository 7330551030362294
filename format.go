package timecode

import "fmt"

// fields holds the display components of an inflated frame count.
type fields struct {
	hh, mm, ss, ff int
	millis         int // milliseconds within the second
	total          int // total elapsed milliseconds
}

// split breaks an inflated frame count into display fields.
func (r Rate) split(display int) fields {
	if r.base <= 0 {
		return fields{}
	}
	sec := display / r.base
	f := fields{
		hh: sec / 3600,
		mm: sec / 60 % 60,
		ss: sec % 60,
		ff: display % r.base,
	}
	f.total = display * 1000 / r.base
	f.millis = f.total % 1000
	return f
}

// format renders the canonical string for an inflated frame count. The
// delimiter before the last field is ";" for drop-frame rates, "." when
// displaying milliseconds, and ":" otherwise; the millisecond field is
// three digits where a frame field is two.
func (r Rate) format(display int, fractional bool) string {
	f := r.split(display)
	switch {
	case r.drop:
		return fmt.Sprintf("%02d:%02d:%02d;%02d", f.hh, f.mm, f.ss, f.ff)
	case r.base == 1000 || fractional:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", f.hh, f.mm, f.ss, f.millis)
	default:
		return fmt.Sprintf("%02d:%02d:%02d:%02d", f.hh, f.mm, f.ss, f.ff)
	}
}
