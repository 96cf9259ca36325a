package config

import "testing"

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]string{"capture.iq"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.NumChannels != defaultNumChannels {
		t.Errorf("NumChannels = %d, want %d", c.NumChannels, defaultNumChannels)
	}
	if c.Verbose || c.UI {
		t.Errorf("Verbose/UI defaults should be false: %+v", c)
	}
	if c.FilePath != "capture.iq" {
		t.Errorf("FilePath = %q, want capture.iq", c.FilePath)
	}
}

func TestParseFlags(t *testing.T) {
	c, err := Parse([]string{"-c", "12", "-v", "-ui", "-"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.NumChannels != 12 {
		t.Errorf("NumChannels = %d, want 12", c.NumChannels)
	}
	if !c.Verbose {
		t.Errorf("Verbose = false, want true")
	}
	if !c.UI {
		t.Errorf("UI = false, want true")
	}
	if c.FilePath != "-" {
		t.Errorf("FilePath = %q, want -", c.FilePath)
	}
}

func TestParseRejectsOutOfRangeChannels(t *testing.T) {
	for _, n := range []string{"0", "256", "-1"} {
		if _, err := Parse([]string{"-c", n, "capture.iq"}); err == nil {
			t.Errorf("Parse with -c %s: got nil error, want range error", n)
		}
	}
}

func TestParseRequiresInputFile(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Errorf("Parse with no arguments: got nil error, want missing-file error")
	}
}
