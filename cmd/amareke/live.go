package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"amareke/internal/logging"
	"amareke/internal/metrics"
	"amareke/internal/model"
	"amareke/internal/studio"
)

const (
	liveGenerate = ":gen"
	liveQuit     = ":quit"
)

func cmdLive(args []string) error {
	f := newStudioFlags("live")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		metrics.StartServer(cfg.Metrics.Addr)
		logging.Info("metrics_listening", map[string]any{"addr": cfg.Metrics.Addr})
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Fprintf(os.Stderr, "type a draft per line, %s for a caption, %s to stop\n", liveGenerate, liveQuit)
	return runLive(ctx, newStudio(cfg), in, os.Stdin, os.Stdout)
}

// runLive scores every non-blank line of r as a draft for in.CTA. The
// generate command composes a caption, prints it and scores it.
func runLive(ctx context.Context, s *studio.Studio, in model.GenerationInput, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		draft := sc.Text()
		switch strings.TrimSpace(draft) {
		case "":
			continue
		case liveQuit:
			return nil
		case liveGenerate:
			caption, err := s.Caption(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, caption)
			draft = caption
		}
		printScore(w, s.Score(model.ScoreInput{Draft: draft, CTA: in.CTA}))
	}
	return sc.Err()
}
