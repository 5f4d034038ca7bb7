package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	log "chiproll/logger"
	"chiproll/roll"
	"chiproll/source"
	"chiproll/ui"
)

// numAPUChannels is the primary chip's channel count; the VRC6
// expansion adds three more.
const numAPUChannels = 5

func runDemo(args Demo, cfg Config) error {
	nchannels := numAPUChannels
	if args.Expansion {
		nchannels += 3
	}
	tracker := roll.New(nchannels)
	applyConfig(cfg, tracker)

	src, err := source.NewDemo(tracker, args.Expansion, !args.Mute)
	if err != nil {
		return err
	}
	return visualize(tracker, src, args.Dump)
}

func runView(args View, cfg Config) error {
	tracker := roll.New(numAPUChannels)
	applyConfig(cfg, tracker)

	src, err := source.NewPCM(args.Path, tracker, args.Rate, args.Block, !args.Mute)
	if err != nil {
		return err
	}
	return visualize(tracker, src, args.Dump)
}

// visualize runs the producer (source stepping at block rate) against
// the UI loop, which stays on the main goroutine as SDL requires.
func visualize(tracker *roll.Tracker, src source.Source, dump string) error {
	defer src.Close()

	win, err := ui.NewWindow("chiproll", tracker)
	if err != nil {
		return err
	}
	defer win.Close()

	stop := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		next := time.Now()
		for {
			select {
			case <-stop:
				return nil
			default:
			}

			d, ok := src.Step()
			if !ok {
				log.ModApp.Infof("end of stream")
				return nil
			}
			next = next.Add(d)
			time.Sleep(time.Until(next))
		}
	})

	for win.HandleEvents() {
		win.Draw(src.Now())
	}

	close(stop)
	if err := g.Wait(); err != nil {
		return err
	}

	if dump != "" {
		if err := dumpEvents(tracker, dump); err != nil {
			return fmt.Errorf("dump events: %w", err)
		}
	}
	return saveConfig(snapshotConfig(tracker))
}

func runAnalyze(args Analyze) error {
	tracker := roll.New(numAPUChannels)

	src, err := source.NewPCM(args.Path, tracker, args.Rate, args.Block, false)
	if err != nil {
		return err
	}
	defer src.Close()

	// Progress on stderr while the advisory counter moves.
	done := make(chan struct{})
	go func() {
		tick := time.NewTicker(200 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				fmt.Fprintf(os.Stderr, "\ranalyzing... %3.0f%%", tracker.Progress()*100)
			}
		}
	}()

	err = src.Analyze()
	close(done)
	fmt.Fprintf(os.Stderr, "\ranalyzing... done\n")
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if args.Output != "-" {
		f, err := os.Create(args.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return roll.WriteEvents(w, tracker.Events())
}

func dumpEvents(tracker *roll.Tracker, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return roll.WriteEvents(f, tracker.Events())
}
