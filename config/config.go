// Package config parses the receiver's command line the way
// bratwurzt-rtlamr's Config.Parse does: build a flag.FlagSet, validate
// every flag, and hand back an error instead of exiting, so main stays
// the only place that calls os.Exit.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const (
	defaultNumChannels = 6
	minNumChannels     = 1
	maxNumChannels     = 255
)

// Config holds the fully validated command-line configuration.
type Config struct {
	// NumChannels is the number of contiguous 400kHz channels the
	// capture spans; the receiver aliases all of them onto one
	// processing path rather than filtering/mixing them apart.
	NumChannels int

	// Verbose enables periodic statistics logging to stderr.
	Verbose bool

	// UI enables the live terminal dashboard instead of plain
	// hex-per-line stdout output.
	UI bool

	// FilePath is the input file path, or "-" for standard input.
	FilePath string
}

// Parse parses args (typically os.Args[1:]) into a Config, returning an
// error for an out-of-range channel count or a missing input file.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("earx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	c := &Config{}
	fs.IntVar(&c.NumChannels, "c", defaultNumChannels, "number of 400kHz channels to receive (1-255)")
	fs.BoolVar(&c.Verbose, "v", false, "log periodic block/frame statistics to stderr")
	fs.BoolVar(&c.UI, "ui", false, "show a live terminal dashboard instead of plain stdout output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.NumChannels < minNumChannels || c.NumChannels > maxNumChannels {
		return nil, fmt.Errorf("number of channels out of range: %d (must be %d-%d)", c.NumChannels, minNumChannels, maxNumChannels)
	}

	if fs.NArg() < 1 {
		return nil, errors.New("please specify input file")
	}
	c.FilePath = fs.Arg(0)

	return c, nil
}

// Usage writes the command's usage text to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, "earx - A lightweight Elster EnergyAxis receiver\n"+
		"Usage: earx [options] FILE\n\n"+
		"  FILE        Unsigned 8-bit IQ file to process (or \"-\" for stdin)\n"+
		"  -c N        Number of 400kHz channels to receive (1-255, default 6)\n"+
		"  -v          Log periodic block/frame statistics to stderr\n"+
		"  -ui         Show a live terminal dashboard\n\n")
}

// Open opens the configured input, returning os.Stdin (not wrapped in a
// closer that would actually close it) when FilePath is "-".
func (c *Config) Open() (io.ReadCloser, error) {
	if c.FilePath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(c.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.FilePath, err)
	}
	return f, nil
}
