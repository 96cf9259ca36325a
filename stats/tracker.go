// Package stats tracks receiver activity for the optional verbose log
// and live dashboard. It has no influence on which frames are emitted --
// every frame that passes CRC validation is still written out regardless
// of whether anything here is listening.
//
// The TTL cache underneath (github.com/patrickmn/go-cache) remembers the
// last-seen time for each modulation so a stale entry ages out of the
// dashboard on its own, with no manual pruning.
package stats

import (
	"sync/atomic"
	"time"

	cache "github.com/patrickmn/go-cache"

	"earx/mode"
)

const lastSeenTTL = 60 * time.Second

// Tracker accumulates counters across the lifetime of a receiver run.
type Tracker struct {
	blocksRead      int64
	framesAccepted  int64
	framesRejected  int64
	noiseResets     int64
	perModeAccepted [2]int64

	lastSeen *cache.Cache
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		lastSeen: cache.New(lastSeenTTL, 10*time.Second),
	}
}

// BlockRead records one successfully read input block.
func (t *Tracker) BlockRead() {
	atomic.AddInt64(&t.blocksRead, 1)
}

// FrameAccepted records a frame that passed CRC validation.
func (t *Tracker) FrameAccepted(m mode.Mode) {
	atomic.AddInt64(&t.framesAccepted, 1)
	atomic.AddInt64(&t.perModeAccepted[m], 1)
	t.lastSeen.SetDefault(m.String(), time.Now())
}

// FrameRejected records a frame that failed CRC validation.
func (t *Tracker) FrameRejected() {
	atomic.AddInt64(&t.framesRejected, 1)
}

// NoiseReset records a noise-threshold trip that returned the framer to
// Searching mid-frame.
func (t *Tracker) NoiseReset() {
	atomic.AddInt64(&t.noiseResets, 1)
}

// Snapshot is a point-in-time copy of the tracked counters, safe to read
// without further synchronization.
type Snapshot struct {
	BlocksRead     int64
	FramesAccepted int64
	FramesRejected int64
	NoiseResets    int64
	Mode1Accepted  int64
	Mode2Accepted  int64
	LastMode1Seen  time.Time
	LastMode2Seen  time.Time
}

// Snapshot returns a consistent-enough copy of the current counters.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		BlocksRead:     atomic.LoadInt64(&t.blocksRead),
		FramesAccepted: atomic.LoadInt64(&t.framesAccepted),
		FramesRejected: atomic.LoadInt64(&t.framesRejected),
		NoiseResets:    atomic.LoadInt64(&t.noiseResets),
		Mode1Accepted:  atomic.LoadInt64(&t.perModeAccepted[mode.Mode1]),
		Mode2Accepted:  atomic.LoadInt64(&t.perModeAccepted[mode.Mode2]),
	}
	if v, ok := t.lastSeen.Get(mode.Mode1.String()); ok {
		s.LastMode1Seen = v.(time.Time)
	}
	if v, ok := t.lastSeen.Get(mode.Mode2.String()); ok {
		s.LastMode2Seen = v.(time.Time)
	}
	return s
}
