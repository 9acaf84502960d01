package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	v, c, d := Info()
	if v == "" {
		t.Error("version should not be empty")
	}
	if c == "" {
		t.Error("commit should not be empty")
	}
	if d == "" {
		t.Error("date should not be empty")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should not return empty string")
	}
}

func TestGetCommit(t *testing.T) {
	if GetCommit() == "" {
		t.Error("GetCommit should not return empty string")
	}
}

func TestGetDate(t *testing.T) {
	if GetDate() == "" {
		t.Error("GetDate should not return empty string")
	}
}

func TestString(t *testing.T) {
	s := String()
	if s == "" {
		t.Fatal("String should not return empty string")
	}
	for _, part := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, part) {
			t.Errorf("String should contain %q, got %q", part, s)
		}
	}
}

func TestVersionConsistency(t *testing.T) {
	v, c, d := Info()
	if got := GetVersion(); got != v {
		t.Errorf("GetVersion (%s) should match Info version (%s)", got, v)
	}
	if got := GetCommit(); got != c {
		t.Errorf("GetCommit (%s) should match Info commit (%s)", got, c)
	}
	if got := GetDate(); got != d {
		t.Errorf("GetDate (%s) should match Info date (%s)", got, d)
	}
}
