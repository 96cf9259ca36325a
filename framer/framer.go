// Package framer implements the three-state frame assembler: Searching
// for a preamble+syncword, then ReceivingLength, then ReceivingBody.
// Bit position, byte position, the 64-bit history shift register, the
// Manchester toggle, and the message buffer are explicit fields on a
// single struct, so the pipeline has no hidden state threaded through
// package-level globals.
package framer

import "earx/mode"

type state int

const (
	searching state = iota
	receivingLength
	receivingBody
)

// bufferSize holds the largest possible frame: a 16-bit Mode 2 length
// field (up to 65535) plus 2 CRC bytes.
const bufferSize = 65537

// Frame is one fully assembled, de-whitened frame handed to the caller.
// Bytes includes the trailing two CRC bytes; it is not yet validated.
type Frame struct {
	Mode  mode.Mode
	Bytes []byte
}

// Framer assembles bits into frames. The zero value is not ready to
// use; construct one with New.
type Framer struct {
	state   state
	mode    mode.Mode
	bitPos  int
	bytePos int
	toggle  bool
	msgLen  int
	xorKey  byte
	history uint64
	buffer  [bufferSize]byte

	onFrame func(Frame)
}

// New creates a Framer in the Searching state, Mode 1. onFrame is
// called with each fully assembled frame (not yet CRC-checked) as soon
// as its declared length is satisfied; the Framer resets to Searching
// immediately afterward, whether or not the caller considers the frame
// valid.
func New(onFrame func(Frame)) *Framer {
	f := &Framer{onFrame: onFrame}
	f.Reset()
	return f
}

// Mode reports the modulation currently being demodulated. It is only
// meaningful outside of Searching; during Searching it always reports
// Mode1, since every return to Searching goes through Reset.
func (f *Framer) Mode() mode.Mode { return f.mode }

// InSearching reports whether the Framer is waiting for a preamble.
func (f *Framer) InSearching() bool { return f.state == searching }

// Reset returns the Framer to Searching/Mode1 with bit and byte
// counters cleared. history is left untouched -- a frame boundary does
// not erase bits already shifted into the preamble detector, since
// those bits were never "consumed" by this reset, only by a subsequent
// preamble match.
func (f *Framer) Reset() {
	f.state = searching
	f.mode = mode.Mode1
	f.bitPos = 0
	f.bytePos = 0
	f.toggle = false
	f.msgLen = 0
	f.xorKey = 0
}

// PutBit feeds one demodulated symbol into the state machine.
func (f *Framer) PutBit(bit byte) {
	switch f.state {
	case searching:
		f.history = (f.history << 1) | uint64(bit&1)
		if m, ok := mode.ByPreamble(f.history); ok {
			f.beginReceiving(m)
		}
	case receivingLength:
		f.consumeLengthBit(bit)
	case receivingBody:
		f.consumeBodyBit(bit)
	}
}

func (f *Framer) beginReceiving(m mode.Mode) {
	f.mode = m
	f.state = receivingLength
	f.bitPos = 0
	f.bytePos = 0
	f.msgLen = 0
	f.toggle = true
	f.xorKey = m.Params().XORKey
}

// consumeBit gates the incoming bit through the Manchester toggle
// (Mode 1 only consumes every second half-bit; Mode 2 consumes every
// bit), shifts it into the byte being assembled, and reports whether
// that byte is now complete (8 bits accumulated). The toggle itself
// flips on every call, gated or not.
func (f *Framer) consumeBit(bit byte) (byteComplete bool) {
	take := f.mode == mode.Mode2 || f.toggle
	if take {
		f.buffer[f.bytePos] = (f.buffer[f.bytePos] << 1) | (bit & 1)
		f.bitPos++
	}
	f.toggle = !f.toggle
	return take && f.bitPos == 8
}

func (f *Framer) consumeLengthBit(bit byte) {
	if !f.consumeBit(bit) {
		return
	}
	f.buffer[f.bytePos] ^= f.xorKey

	if f.mode.Params().LengthBytes == 1 {
		// Mode 1: single length byte, +2 for the trailing CRC.
		f.msgLen = int(f.buffer[f.bytePos]) + 2
		f.bitPos = 0
		f.bytePos++
		f.state = receivingBody
		return
	}

	// Mode 2: two big-endian length bytes, +2 for the trailing CRC.
	if f.bytePos == 1 {
		f.msgLen = (int(f.buffer[0])<<8 | int(f.buffer[1])) + 2
		f.state = receivingBody
	}
	f.bitPos = 0
	f.bytePos++
}

func (f *Framer) consumeBodyBit(bit byte) {
	if !f.consumeBit(bit) {
		return
	}
	f.buffer[f.bytePos] ^= f.xorKey
	f.bitPos = 0
	f.bytePos++

	if f.bytePos == f.msgLen {
		frame := Frame{
			Mode:  f.mode,
			Bytes: append([]byte(nil), f.buffer[:f.msgLen]...),
		}
		f.Reset()
		if f.onFrame != nil {
			f.onFrame(frame)
		}
	}
}
