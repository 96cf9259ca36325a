package stats

import (
	"testing"

	"earx/mode"
)

func TestTrackerCounters(t *testing.T) {
	tr := NewTracker()

	tr.BlockRead()
	tr.BlockRead()
	tr.FrameAccepted(mode.Mode1)
	tr.FrameAccepted(mode.Mode1)
	tr.FrameAccepted(mode.Mode2)
	tr.FrameRejected()
	tr.NoiseReset()

	s := tr.Snapshot()
	if s.BlocksRead != 2 {
		t.Errorf("BlocksRead = %d, want 2", s.BlocksRead)
	}
	if s.FramesAccepted != 3 {
		t.Errorf("FramesAccepted = %d, want 3", s.FramesAccepted)
	}
	if s.FramesRejected != 1 {
		t.Errorf("FramesRejected = %d, want 1", s.FramesRejected)
	}
	if s.NoiseResets != 1 {
		t.Errorf("NoiseResets = %d, want 1", s.NoiseResets)
	}
	if s.Mode1Accepted != 2 {
		t.Errorf("Mode1Accepted = %d, want 2", s.Mode1Accepted)
	}
	if s.Mode2Accepted != 1 {
		t.Errorf("Mode2Accepted = %d, want 1", s.Mode2Accepted)
	}
	if s.LastMode1Seen.IsZero() {
		t.Errorf("LastMode1Seen is zero, want a recorded timestamp")
	}
}

func TestTrackerSnapshotBeforeAnyActivity(t *testing.T) {
	tr := NewTracker()
	s := tr.Snapshot()

	if s.BlocksRead != 0 || s.FramesAccepted != 0 || s.FramesRejected != 0 || s.NoiseResets != 0 {
		t.Errorf("fresh Tracker has non-zero counters: %+v", s)
	}
	if !s.LastMode1Seen.IsZero() || !s.LastMode2Seen.IsZero() {
		t.Errorf("fresh Tracker reports a last-seen time before any frame was accepted")
	}
}
