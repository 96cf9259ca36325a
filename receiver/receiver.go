// Package receiver wires the IQ converter, frequency discriminator,
// channelizer-by-decimation, symbol slicer, framer, CRC validator, and
// emitter together into a single-threaded, pull-driven loop: read a
// block, iterate decimated samples, update discriminator/slicer/framer,
// emit.
package receiver

import (
	"errors"
	"io"
	"log"

	"earx/crc"
	"earx/emit"
	"earx/framer"
	"earx/iq"
	"earx/slicer"
	"earx/stats"
)

// BlockSize is the number of sample pairs read per channel, per
// iteration of the driver loop.
const BlockSize = 16384

// Receiver owns every stage of the pipeline and the fixed-size input
// buffer sized to read BlockSize*numChannels sample pairs at a time.
type Receiver struct {
	numChannels int

	table  *iq.Table
	disc   *iq.Discriminator
	slicer *slicer.Slicer
	framer *framer.Framer

	out     io.Writer
	stats   *stats.Tracker
	verbose bool

	buf []byte
}

// New builds a Receiver that decimates by numChannels, writes accepted
// frames to out, and optionally records activity in st (st may be nil).
func New(numChannels int, out io.Writer, st *stats.Tracker, verbose bool) *Receiver {
	r := &Receiver{
		numChannels: numChannels,
		table:       iq.NewTable(),
		disc:        &iq.Discriminator{},
		out:         out,
		stats:       st,
		verbose:     verbose,
		buf:         make([]byte, 2*BlockSize*numChannels),
	}
	r.framer = framer.New(r.onFrame)
	r.slicer = slicer.New(&instrumentedFramer{Framer: r.framer, stats: st}, numChannels)
	return r
}

// instrumentedFramer wraps *framer.Framer so the slicer's noise-triggered
// Reset() calls are visible to stats, without the Framer itself needing
// to know stats exists.
type instrumentedFramer struct {
	*framer.Framer
	stats *stats.Tracker
}

func (f *instrumentedFramer) Reset() {
	f.Framer.Reset()
	if f.stats != nil {
		f.stats.NoiseReset()
	}
}

// onFrame is invoked by the Framer once per fully assembled frame
// (whether or not it will pass CRC). It is the only place that
// validates and emits.
func (r *Receiver) onFrame(f framer.Frame) {
	ok := crc.Validate(f.Bytes)

	if r.stats != nil {
		if ok {
			r.stats.FrameAccepted(f.Mode)
		} else {
			r.stats.FrameRejected()
		}
	}

	if !ok {
		return
	}

	if err := emit.WriteHex(r.out, f.Bytes); err != nil {
		log.Printf("earx: write frame: %v", err)
	}
}

// Run reads from in until EOF, feeding every decimated sample through
// the pipeline. A short final read (fewer than a full block) is still
// processed before returning.
func (r *Receiver) Run(in io.Reader) error {
	for {
		n, err := io.ReadFull(in, r.buf)
		if n > 0 {
			r.processBlock(r.buf[:n])
			if r.stats != nil {
				r.stats.BlockRead()
			}
			if r.verbose {
				r.logProgress()
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}
	}
}

// processBlock runs the decimation/discrimination/slicing stages over
// one block of raw interleaved I/Q bytes. Only every numChannels-th
// sample pair is processed -- the deliberate aliasing shortcut that
// channelizes without filtering, at the cost of dropping collisions
// between simultaneous transmissions on distinct channels (the CRC
// check downstream discards the garbage that results).
func (r *Receiver) processBlock(raw []byte) {
	pairs := len(raw) / 2
	for i := 0; i < pairs; i += r.numChannels {
		iByte, qByte := raw[i*2], raw[i*2+1]
		sample := r.table.Convert(iByte, qByte)
		angle := r.disc.Next(sample)
		r.slicer.Process(angle)
	}
}

func (r *Receiver) logProgress() {
	s := r.stats.Snapshot()
	log.Printf("blocks=%d accepted=%d rejected=%d noise_resets=%d",
		s.BlocksRead, s.FramesAccepted, s.FramesRejected, s.NoiseResets)
}
