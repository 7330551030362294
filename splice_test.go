package timecode

import (
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSpliceSize(t *testing.T) {
	s := Splice{{5, 10}, {20, 30}}
	if have, want := s.Size(), 15*time.Second; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
}

func TestSpliceUnion(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    Splice
		want Range
	}{
		{"empty", Splice{}, Range{}},
		{"single", Splice{{5, 10}}, Range{5, 10}},
		{"overlapping", Splice{{5, 10}, {8, 30}, {1, 2}}, Range{1, 30}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if have := tc.s.Union(); have != tc.want {
				t.Fatalf("have %v, want %v", have, tc.want)
			}
		})
	}
}

func TestSpliceIn(t *testing.T) {
	s := Splice{{5, 10}, {20, 30}}
	if !s.In(Range{0, 100}) {
		t.Fatal("splice should be inside (0s-100s)")
	}
	if s.In(Range{0, 25}) {
		t.Fatal("splice should not be inside (0s-25s)")
	}
}

func TestSpliceSorted(t *testing.T) {
	s := Splice{{20, 30}, {5, 10}, {5, 8}}
	if s.Sorted() {
		t.Fatal("unsorted splice reported sorted")
	}
	sort.Sort(s)
	if !s.Sorted() {
		t.Fatal("sorted splice reported unsorted")
	}
	if have, want := s[0], (Range{5, 8}); have != want {
		t.Fatalf("shorter range should sort first: have %v, want %v", have, want)
	}
}

func TestSpliceUnmarshalText(t *testing.T) {
	var s Splice
	if err := s.UnmarshalText([]byte(`[[5,10],[20,30]]`)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Splice{{5, 10}, {20, 30}}, s); diff != "" {
		t.Fatalf("splice mismatch: %s", diff)
	}

	var empty Splice
	if err := empty.UnmarshalText(nil); err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("have %v, want empty", empty)
	}
}

func TestSpliceClippings(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    Splice
		rate Rate
		want []Clipping
	}{
		{"5-10s", Splice{{5, 10}}, Rate24, []Clipping{{Start: "00:00:05:00", End: "00:00:10:00"}}},
		{"drop", Splice{{10, 20}}, Rate2997, []Clipping{{Start: "00:00:10;00", End: "00:00:20;00"}}},
		{"drop-minute", Splice{{60, 60.5}}, Rate2997, []Clipping{{Start: "00:01:00;02", End: "00:01:00;15"}}},
		{"empty", Splice{}, Rate24, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			have := tc.s.Clippings(tc.rate)
			if diff := cmp.Diff(tc.want, have); diff != "" {
				t.Fatalf("clippings mismatch: %s", diff)
			}
		})
	}
}
