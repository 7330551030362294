package timecode

// Drop-frame counting skips the first frame numbers of every minute,
// except each tenth minute, so that the displayed clock tracks wall
// time at fractional rates. The skipped numbers never existed as real
// frames: 29.97 skips 2 per minute and 59.94 skips 4, which makes a
// drop minute 1798 or 3596 timecode frames and a ten minute block
// 17982 or 35964 real frames.

// inflate converts a real frame count into the larger frame number a
// timecode displays. The count is decomposed into ten minute blocks
// plus whole drop minutes, and every skipped number along the way is
// added back. Identity for non-drop rates.
func (r Rate) inflate(n int) int {
	n = r.wrap(n)
	if !r.drop {
		return n
	}
	per10 := 10*r.perMin + r.dropped
	blocks := n / per10
	mins := (n%per10 - r.dropped) / r.perMin
	return n + r.dropped*(9*blocks+mins)
}

// deflate converts a displayed frame number back into the real frame
// count. The drop minute estimate shifts the display count down by the
// per-minute skip first, so an impossible number like 00:01:00;00
// resolves forward onto the same real frame as 00:01:00;02 instead of
// bleeding back into the previous second. Exact inverse of inflate for
// every number inflate produces. Identity for non-drop rates.
func (r Rate) deflate(n int) int {
	n = r.wrapDisplay(n)
	if !r.drop {
		return n
	}
	mins := (n - r.dropped) / (60 * r.base)
	mins -= mins / 10
	return n - r.dropped*mins
}
