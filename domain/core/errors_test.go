package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstructorsWrapSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		check    func(error) bool
	}{
		{"insufficient data", NewInsufficientDataError("sample a", 1, 2), ErrInsufficientData, IsInsufficientData},
		{"insufficient groups", NewInsufficientGroupsError(1, 2), ErrInsufficientGroups, IsInsufficientGroups},
		{"degenerate table", NewDegenerateTableError("1x3 table"), ErrDegenerateTable, IsDegenerateTable},
		{"config", NewConfigError("alpha", "must be in (0,1)"), ErrInvalidConfig, IsConfigError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("errors.Is failed for %v", tc.err)
			}
			if !tc.check(tc.err) {
				t.Errorf("helper did not recognize %v", tc.err)
			}
		})
	}
}

func TestErrorHelpersRejectOtherErrors(t *testing.T) {
	plain := fmt.Errorf("disk on fire")
	if IsInsufficientData(plain) || IsInsufficientGroups(plain) || IsDegenerateTable(plain) || IsConfigError(plain) {
		t.Error("helpers must not match unrelated errors")
	}
	if IsConfigError(NewInsufficientDataError("x", 0, 1)) {
		t.Error("helpers must not match across sentinel families")
	}
}

func TestNewIDUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("NewID returned an empty ID")
	}
	if a == b {
		t.Error("consecutive IDs should differ")
	}
}
