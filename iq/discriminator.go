package iq

import "math"

// Angle returns the argument of s * conj(p), an instantaneous-frequency
// proxy in (-pi, +pi]. Only its sign matters downstream; the magnitude
// of s and p is discarded entirely.
func Angle(s, p complex64) float64 {
	pConj := complex(real(p), -imag(p))
	d := s * pConj
	return math.Atan2(float64(imag(d)), float64(real(d)))
}

// Discriminator tracks the previous sample so it can hand successive
// Angle() deltas to the symbol slicer. The zero value is ready to use:
// its first call seeds against the complex zero.
type Discriminator struct {
	last complex64
}

// Next computes the phase delta between s and the previously seen
// sample, then remembers s for the following call.
func (d *Discriminator) Next(s complex64) float64 {
	angle := Angle(s, d.last)
	d.last = s
	return angle
}
