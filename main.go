package main

import (
	"bufio"
	"fmt"
	"os"

	"earx/config"
	"earx/receiver"
	"earx/stats"
	"earx/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "earx:", err)
		config.Usage(os.Stderr)
		os.Exit(1)
	}

	in, err := cfg.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, "earx:", err)
		os.Exit(1)
	}
	if cfg.FilePath != "-" {
		defer in.Close()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	tracker := stats.NewTracker()
	rcv := receiver.New(cfg.NumChannels, out, tracker, cfg.Verbose)

	if cfg.UI {
		if err := ui.Run(rcv, in, tracker); err != nil {
			fmt.Fprintln(os.Stderr, "earx:", err)
			os.Exit(1)
		}
		return
	}

	if err := rcv.Run(in); err != nil {
		fmt.Fprintln(os.Stderr, "earx:", err)
		os.Exit(1)
	}
}
