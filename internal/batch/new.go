package batch

import (
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/caption"
	"github.com/nguyentantai21042004/caption-text/internal/config"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

type implRunner struct {
	cfg      *config.Config
	cleaner  caption.Cleaner
	logger   logger.Logger
	observer Observer
	now      func() time.Time
}

// Option customizes a Runner.
type Option func(*implRunner)

// WithObserver reports progress to obs.
func WithObserver(obs Observer) Option {
	return func(r *implRunner) { r.observer = obs }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *implRunner) { r.now = now }
}

// New creates a new Runner instance
func New(cfg *config.Config, cleaner caption.Cleaner, log logger.Logger, opts ...Option) Runner {
	r := &implRunner{
		cfg:     cfg,
		cleaner: cleaner,
		logger:  log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
