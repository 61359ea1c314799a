package version

import "testing"

func TestInfoDevBuild(t *testing.T) {
	prevSHA, prevDate := CommitSHA, BuildDate
	t.Cleanup(func() { CommitSHA, BuildDate = prevSHA, prevDate })

	CommitSHA = "dev"
	if got := Info(); got != Version {
		t.Errorf("expected bare version %q, got %q", Version, got)
	}
}

func TestInfoReleaseBuild(t *testing.T) {
	prevVersion, prevSHA, prevDate := Version, CommitSHA, BuildDate
	t.Cleanup(func() { Version, CommitSHA, BuildDate = prevVersion, prevSHA, prevDate })

	Version = "v1.2.3"
	CommitSHA = "abc1234"
	BuildDate = "2026-08-01"
	if got := Info(); got != "1.2.3 (abc1234, 2026-08-01)" {
		t.Errorf("unexpected release info: %q", got)
	}
}
