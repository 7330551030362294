package db

import (
	"testing"
	"time"

	"github.com/cbsinteractive/timecode"
	"github.com/cbsinteractive/timecode/test"
	"github.com/google/go-cmp/cmp"
)

func TestCutlistValidate(t *testing.T) {
	var tests = []struct {
		testCase string
		cutlist  Cutlist
		errMsg   string
	}{
		{
			"valid cutlist",
			Cutlist{Name: "ep101", FPS: 29.97},
			"",
		},
		{
			"missing name",
			Cutlist{FPS: 29.97},
			"name is required",
		},
		{
			"negative fps",
			Cutlist{Name: "ep101", FPS: -1},
			"fps cannot be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.testCase, func(t *testing.T) {
			err := tt.cutlist.Validate()
			test.AssertWantErr(err, tt.errMsg, "Validate()", t)
		})
	}
}

func TestCutlistNormalize(t *testing.T) {
	cl := Cutlist{
		Name: "ep101",
		FPS:  29.97,
		Clippings: []timecode.Clipping{
			{Start: "00:01:00;00", End: "00:02:00;02"},
			{Start: "00:00:10;02", End: "00:00:05;00"},
		},
	}
	if err := cl.Normalize(cl.Rate()); err != nil {
		t.Fatal(err)
	}
	want := []timecode.Clipping{
		{Start: "00:01:00;02", End: "00:02:00;02"},
		{Start: "00:00:05;00", End: "00:00:10;02"},
	}
	if diff := cmp.Diff(want, cl.Clippings); diff != "" {
		t.Fatalf("clippings mismatch: %s", diff)
	}
}

func TestCutlistNormalizeMismatch(t *testing.T) {
	cl := Cutlist{
		Name:      "ep101",
		FPS:       24,
		Clippings: []timecode.Clipping{{Start: "00:00:05;00", End: "00:00:10;00"}},
	}
	err := cl.Normalize(cl.Rate())
	test.AssertErrIs(err, timecode.ErrFormatMismatch, "Normalize()", t)
}

func TestCutlistSplice(t *testing.T) {
	cl := Cutlist{
		Name: "ep101",
		FPS:  24,
		Clippings: []timecode.Clipping{
			{Start: "00:00:05:00", End: "00:00:10:00"},
			{Start: "00:00:20:00", End: "00:00:30:00"},
		},
	}
	s, err := cl.Splice()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(timecode.Splice{{5, 10}, {20, 30}}, s); diff != "" {
		t.Fatalf("splice mismatch: %s", diff)
	}
	if have, want := s.Size(), 15*time.Second; have != want {
		t.Fatalf("size: have %v, want %v", have, want)
	}
}
