// Package studio is the entry point the CLI drives: it wraps the hashtag,
// caption, scoring and calendar functions with a random source, optional
// generation pacing, and metrics.
package studio

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"amareke/internal/metrics"
	"amareke/internal/model"
	"amareke/internal/random"
	"amareke/internal/schedule"
	"amareke/internal/suggest"
)

// Report is everything the studio shows for one input snapshot.
type Report struct {
	Input    model.GenerationInput
	Caption  string
	Draft    string
	Hashtags []string
	Score    model.ScoreResult
	Calendar []model.CalendarEntry
}

// Studio holds no per-call state; the source and pacer are shared capabilities.
type Studio struct {
	src   random.Source
	pacer *rate.Limiter
}

type Option func(*Studio)

// WithSource sets where caption openers are drawn from.
func WithSource(src random.Source) Option {
	return func(s *Studio) { s.src = src }
}

// WithPacing delays every caption generation, the first included, so that
// generations start at least d apart. d <= 0 disables it.
func WithPacing(d time.Duration) Option {
	return func(s *Studio) {
		if d <= 0 {
			s.pacer = nil
			return
		}
		l := rate.NewLimiter(rate.Every(d), 1)
		// the bucket starts full; spend that token so the first Wait blocks too
		l.Allow()
		s.pacer = l
	}
}

func New(opts ...Option) *Studio {
	s := &Studio{src: random.NewSeeded(0)}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Studio) Hashtags(p model.Platform, topic string) []string {
	metrics.IncOp("hashtags")
	return suggest.Hashtags(p, topic)
}

func (s *Studio) Score(in model.ScoreInput) model.ScoreResult {
	metrics.IncOp("score")
	r := model.ScorePost(in)
	metrics.ObserveScore(r.Hook, r.Clarity, r.Structure, r.CTA, r.Total)
	return r
}

func (s *Studio) Calendar(topic string, p model.Platform) []model.CalendarEntry {
	metrics.IncOp("calendar")
	return schedule.BuildCalendar(topic, p)
}

// Caption composes a caption once the pacer allows it. The only error is ctx ending first.
func (s *Studio) Caption(ctx context.Context, in model.GenerationInput) (string, error) {
	if s.pacer != nil {
		start := time.Now()
		if err := s.pacer.Wait(ctx); err != nil {
			return "", err
		}
		metrics.ObservePacing(start)
	}
	metrics.IncOp("caption")
	return suggest.Caption(in, s.src), nil
}

// Snapshot generates a caption and computes every other output for the same input.
// When draft is empty the generated caption is scored instead.
func (s *Studio) Snapshot(ctx context.Context, in model.GenerationInput, draft string) (Report, error) {
	caption, err := s.Caption(ctx, in)
	if err != nil {
		return Report{}, err
	}
	if draft == "" {
		draft = caption
	}
	return Report{
		Input:    in,
		Caption:  caption,
		Draft:    draft,
		Hashtags: s.Hashtags(in.Platform, in.Topic),
		Score:    s.Score(model.ScoreInput{Draft: draft, CTA: in.CTA}),
		Calendar: s.Calendar(in.Topic, in.Platform),
	}, nil
}
