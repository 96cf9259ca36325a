package mode

import "testing"

func TestByPreamble(t *testing.T) {
	cases := []struct {
		name    string
		history uint64
		wantM   Mode
		wantOK  bool
	}{
		{"mode1", 0xAAAAAAAA55A59AA6, Mode1, true},
		{"mode2", 0xAAAAAAAA9A99A656, Mode2, true},
		{"neither", 0x1234567890ABCDEF, 0, false},
		{"one bit off mode1", 0xAAAAAAAA55A59AA7, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, ok := ByPreamble(c.history)
			if ok != c.wantOK {
				t.Fatalf("ByPreamble(%#x) ok = %v, want %v", c.history, ok, c.wantOK)
			}
			if ok && m != c.wantM {
				t.Fatalf("ByPreamble(%#x) = %v, want %v", c.history, m, c.wantM)
			}
		})
	}
}

func TestParams(t *testing.T) {
	if Mode1.Params().SPSx100 != 1125 {
		t.Errorf("Mode1 SPSx100 = %d, want 1125", Mode1.Params().SPSx100)
	}
	if Mode2.Params().SPSx100 != 281 {
		t.Errorf("Mode2 SPSx100 = %d, want 281", Mode2.Params().SPSx100)
	}
	if Mode1.Params().LengthBytes != 1 {
		t.Errorf("Mode1 LengthBytes = %d, want 1", Mode1.Params().LengthBytes)
	}
	if Mode2.Params().LengthBytes != 2 {
		t.Errorf("Mode2 LengthBytes = %d, want 2", Mode2.Params().LengthBytes)
	}
}
