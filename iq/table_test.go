package iq

import (
	"math"
	"testing"
)

func TestTableEndpoints(t *testing.T) {
	table := NewTable()

	if got, want := table[0], float32(-1.0); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("table[0] = %v, want %v", got, want)
	}
	if got, want := table[127], float32(0.0); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("table[127] = %v, want %v", got, want)
	}
	// Index 255 intentionally overshoots +1.0: the scale factor is
	// (byte-127)/127 uniformly, with no clamp at the top of the range.
	if got, want := table[255], float32(128.0/127.0); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("table[255] = %v, want %v", got, want)
	}
}

func TestConvert(t *testing.T) {
	table := NewTable()
	s := table.Convert(127, 0)
	if real(s) != 0 {
		t.Errorf("real(Convert(127, 0)) = %v, want 0", real(s))
	}
	if imag(s) != -1 {
		t.Errorf("imag(Convert(127, 0)) = %v, want -1", imag(s))
	}
}
