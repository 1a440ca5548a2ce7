package batch

import (
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
	"github.com/nguyentantai21042004/caption-text/internal/course"
)

// Outcome is what happened to one input file.
type Outcome string

const (
	OutcomeConverted Outcome = "converted"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Issue records a per-file warning or error.
type Issue struct {
	Kind apperr.Kind
	Path string
	Err  error
	// Warning is set when the issue counted as a warning, not an error.
	Warning bool
}

// Result is the outcome of one batch run.
type Result struct {
	Root      string
	OutputDir string

	Found    int
	Success  int
	Warnings int
	Errors   int

	// Files are the retained files in discovery order.
	Files  []course.ProcessedFile
	Issues []Issue

	CombinedPath string
	BytesWritten int64

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is how long the run took.
func (r Result) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Result) warn(path string, err error) {
	r.Warnings++
	r.Issues = append(r.Issues, Issue{Kind: apperr.KindOf(err), Path: path, Err: err, Warning: true})
}

func (r *Result) fail(path string, err error) {
	r.Errors++
	r.Issues = append(r.Issues, Issue{Kind: apperr.KindOf(err), Path: path, Err: err})
}
