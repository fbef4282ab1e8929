package timegen

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/soupkit/pkg/rng"
)

// DateLayout is the format Date returns.
const DateLayout = time.DateOnly

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithClock sets the reference clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator produces random times.
type Generator struct {
	src rng.Source
	now func() time.Time
}

// New creates a time Generator.
func New(opts ...Option) *Generator {
	g := &Generator{src: rng.Default(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Between returns a uniform instant in [from, to).
func (g *Generator) Between(from, to time.Time) (time.Time, error) {
	if !from.Before(to) {
		return time.Time{}, fmt.Errorf("%w: from %s is not before to %s",
			ErrInvalidArgument, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return from.Add(g.duration(to.Sub(from))), nil
}

// Recent returns an instant in (now-window, now].
func (g *Generator) Recent(window time.Duration) (time.Time, error) {
	if window <= 0 {
		return time.Time{}, fmt.Errorf("%w: window must be positive, got %s", ErrInvalidArgument, window)
	}
	return g.now().Add(-g.duration(window)), nil
}

// Date returns a "2006-01-02" date within the last year.
func (g *Generator) Date() string {
	now := g.now()
	t, _ := g.Between(now.AddDate(-1, 0, 0), now)
	return t.Format(DateLayout)
}

// Duration returns a uniform duration in [0, limit).
func (g *Generator) Duration(limit time.Duration) (time.Duration, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive, got %s", ErrInvalidArgument, limit)
	}
	return g.duration(limit), nil
}

// duration returns a uniform value in [0, d) for d > 0.
func (g *Generator) duration(d time.Duration) time.Duration {
	return time.Duration(g.src.Uint64() % uint64(d))
}
