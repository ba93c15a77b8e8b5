package version

import "testing"

func TestInfoWithoutCommit(t *testing.T) {
	if got := Info(); got != Version {
		t.Errorf("Info() = %q, want %q with no build-time commit", got, Version)
	}
}

func TestInfoWithCommit(t *testing.T) {
	original := Commit
	defer func() { Commit = original }()

	Commit = "abcdef1234567890"
	want := Version + " (abcdef1)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
