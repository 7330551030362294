package test

import (
	"errors"
	"testing"
)

func AssertWantErr(err error, wantErr, caller string, t *testing.T) bool {
	t.Helper()
	if err != nil {
		if wantErr != err.Error() {
			t.Errorf("%s error = %v, wantErr %q", caller, err, wantErr)
		}

		return true
	} else if wantErr != "" {
		t.Errorf("%s expected error %q, did not receive an error", caller, wantErr)
		return true
	}

	return false
}

// AssertErrIs fails the test unless err matches want via errors.Is. A
// nil want asserts that err is nil.
func AssertErrIs(err, want error, caller string, t *testing.T) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Errorf("%s unexpected error: %v", caller, err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Errorf("%s error = %v, want %v", caller, err, want)
	}
}
