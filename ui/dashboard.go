// Package ui provides the optional live dashboard enabled by earx's -ui
// flag: gocui status/list views refreshed by a ticking g.Update loop,
// driven by receiver statistics instead of an aircraft list.
//
// The dashboard is purely observational: it reads from a stats.Tracker
// that the receiver updates as it runs, and never influences which
// frames get validated or emitted.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/jroimartin/gocui"

	"earx/receiver"
	"earx/stats"
)

const refreshInterval = 500 * time.Millisecond

// Run starts the receiver against in in the background and drives a
// terminal dashboard until the user quits with Ctrl+C or the input
// stream ends.
func Run(rcv *receiver.Receiver, in io.Reader, tracker *stats.Tracker) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("start dashboard: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return fmt.Errorf("start dashboard: %w", err)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- rcv.Run(in)
		// End the main loop once the input stream is exhausted.
		g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	}()

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.Update(func(g *gocui.Gui) error {
					return render(g, tracker)
				})
			case <-stop:
				return
			}
		}
	}()

	mainErr := g.MainLoop()
	close(stop)

	if mainErr != nil && !gocui.IsQuit(mainErr) {
		return mainErr
	}
	return <-runErr
}

func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-1, 4); err == nil || err == gocui.ErrUnknownView {
		v.Title = " EARX "
		fmt.Fprintln(v, " waiting for samples...")
	}

	if v, err := g.SetView("log", 0, 5, maxX-1, maxY-1); err == nil || err == gocui.ErrUnknownView {
		v.Title = " ACTIVITY "
	}

	return nil
}

func render(g *gocui.Gui, tracker *stats.Tracker) error {
	s := tracker.Snapshot()

	v, err := g.View("status")
	if err != nil {
		return nil
	}
	v.Clear()
	fmt.Fprintf(v, " blocks read:     %d\n", s.BlocksRead)
	fmt.Fprintf(v, " frames accepted: %d (mode1=%d mode2=%d)\n", s.FramesAccepted, s.Mode1Accepted, s.Mode2Accepted)
	fmt.Fprintf(v, " frames rejected: %d   noise resets: %d\n", s.FramesRejected, s.NoiseResets)

	l, err := g.View("log")
	if err != nil {
		return nil
	}
	l.Clear()
	if !s.LastMode1Seen.IsZero() {
		fmt.Fprintf(l, " last Mode 1 frame: %s\n", s.LastMode1Seen.Format("15:04:05"))
	}
	if !s.LastMode2Seen.IsZero() {
		fmt.Fprintf(l, " last Mode 2 frame: %s\n", s.LastMode2Seen.Format("15:04:05"))
	}

	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
