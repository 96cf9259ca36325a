// Package slicer turns a stream of instantaneous phase-delta values into
// symbols (bits) delivered to a Framer, tracking runs of same-sign delta
// and rounding each run's duration to a whole number of symbols for the
// active modulation.
package slicer

import "earx/mode"

// noiseThreshold is the number of consecutive zero-symbol runs tolerated
// before the Slicer gives up on the in-progress frame and resets the
// Framer.
const noiseThreshold = 5

// Framer is the subset of framer.Framer the Slicer depends on. Declaring
// it here (rather than importing the concrete type) keeps the slicer
// package testable against a fake without pulling in the whole framing
// state machine.
type Framer interface {
	PutBit(bit byte)
	InSearching() bool
	Reset()
	Mode() mode.Mode
}

// Slicer tracks the current same-sign run of phase deltas and emits
// symbols to a Framer when the run ends.
type Slicer struct {
	framer Framer

	highSymbol byte
	lowSymbol  byte

	sampleCount int
	lastAngle   float64
	noiseCount  int
}

// New creates a Slicer that delivers symbols to framer, with channel
// parity derived from numChannels (see SetChannelParity).
func New(framer Framer, numChannels int) *Slicer {
	s := &Slicer{framer: framer}
	s.SetChannelParity(numChannels)
	return s
}

// SetChannelParity sets the high/low symbol mapping for a given channel
// count. When numChannels is even, the decimated center frequency sits
// between channels and the sense of "positive frequency" inverts, so the
// high/low assignment must flip too.
func (s *Slicer) SetChannelParity(numChannels int) {
	if numChannels%2 == 0 {
		s.highSymbol, s.lowSymbol = 0, 1
	} else {
		s.highSymbol, s.lowSymbol = 1, 0
	}
}

// Process consumes one phase-delta sample. Same-sign deltas extend the
// current run; a sign flip (or an exactly-zero delta, which is treated
// as a flip against any non-zero predecessor) ends it and, if the run
// was long enough to represent at least one symbol, delivers that many
// copies of the run's symbol to the Framer.
func (s *Slicer) Process(angle float64) {
	if angle*s.lastAngle > 0 {
		s.sampleCount++
		s.noiseCount = 0
		s.lastAngle = angle
		return
	}

	symbol := s.lowSymbol
	if s.lastAngle > 0 {
		symbol = s.highSymbol
	}

	count := s.symbolCount()
	if count > 0 {
		for i := 0; i < count; i++ {
			s.framer.PutBit(symbol)
		}
	} else if !s.framer.InSearching() {
		s.noiseCount++
		if s.noiseCount > noiseThreshold {
			s.noiseCount = 0
			s.framer.Reset()
		}
	}

	s.sampleCount = 1
	s.lastAngle = angle
}

// symbolCount maps the just-finished run's sample count to a number of
// symbols using the Framer's active modulation, rounding half-up:
// ((sampleCount * 1000 / SPSx100) + 5) / 10.
func (s *Slicer) symbolCount() int {
	spsX100 := s.framer.Mode().Params().SPSx100
	return ((s.sampleCount*1000/spsX100 + 5) / 10)
}
