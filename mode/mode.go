// Package mode holds the per-modulation constants for the two on-air
// formats used by the EnergyAxis physical layer: Mode 1 (35.555 kBaud,
// Manchester encoded) and Mode 2 (142.222 kBaud, NRZ).
package mode

// Mode identifies which on-air modulation a frame was received with.
type Mode int

const (
	// Mode1 is 35.555 kBaud, Manchester encoded, one length byte.
	Mode1 Mode = iota
	// Mode2 is 142.222 kBaud, NRZ, two big-endian length bytes.
	Mode2
)

func (m Mode) String() string {
	if m == Mode2 {
		return "Mode 2"
	}
	return "Mode 1"
}

// Params bundles the constants that distinguish the two modulations.
type Params struct {
	Name string

	// SPSx100 is samples-per-symbol at the 400 ksps capture rate,
	// multiplied by 100 so it can be stored as an integer
	// (11.25 -> 1125, 2.81 -> 281).
	SPSx100 int

	// Preamble is the 64-bit preamble+syncword that precedes every
	// frame in this mode.
	Preamble uint64

	// XORKey is XORed with every post-syncword byte to de-whiten it.
	XORKey byte

	// LengthBytes is the width of the length field: 1 byte for Mode 1,
	// 2 (big-endian) for Mode 2.
	LengthBytes int
}

var (
	mode1Params = Params{
		Name:        "Mode 1",
		SPSx100:     1125,
		Preamble:    0xAAAAAAAA55A59AA6,
		XORKey:      0x55,
		LengthBytes: 1,
	}
	mode2Params = Params{
		Name:        "Mode 2",
		SPSx100:     281,
		Preamble:    0xAAAAAAAA9A99A656,
		XORKey:      0xAA,
		LengthBytes: 2,
	}
)

// Params returns the constant set for m.
func (m Mode) Params() Params {
	if m == Mode2 {
		return mode2Params
	}
	return mode1Params
}

// ByPreamble returns the mode whose 64-bit preamble+syncword exactly
// matches history, and ok=true. If history matches neither preamble,
// ok is false.
func ByPreamble(history uint64) (m Mode, ok bool) {
	switch history {
	case mode1Params.Preamble:
		return Mode1, true
	case mode2Params.Preamble:
		return Mode2, true
	default:
		return 0, false
	}
}
