// Package iq converts raw unsigned-8-bit I/Q sample pairs into complex
// baseband samples and extracts the instantaneous phase delta between
// consecutive samples, the two front-end stages of the receiver pipeline.
package iq

// Table is a precomputed mapping from an unsigned byte to its
// floating-point equivalent in approximately [-1, +1].
//
// All 256 entries are initialized (0..255). Index 255 maps to
// +128/127 ≈ 1.0078740, a hair past 1.0 rather than clamped to it --
// the scale factor is (byte-127)/127 for every index, with no special
// case at the top of the range.
type Table [256]float32

// NewTable builds the 256-entry conversion table once, at startup.
func NewTable() *Table {
	var t Table
	for i := 0; i < 256; i++ {
		f := float32(i)
		f -= 127
		f /= 127
		t[i] = f
	}
	return &t
}

// Convert maps one (I, Q) byte pair to a complex baseband sample.
func (t *Table) Convert(i, q byte) complex64 {
	return complex(t[i], t[q])
}
