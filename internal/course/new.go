package course

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

// DefaultCombinedName is the file name of the combined transcript.
const DefaultCombinedName = "00-COMBINED-ALL.txt"

// Options configures an Aggregator.
type Options struct {
	// Root is the scan root, printed in the combined header.
	Root string
	// OutputDir receives every artifact.
	OutputDir string
	// CombinedName defaults to DefaultCombinedName.
	CombinedName string
	// LineEnding defaults to "\n".
	LineEnding string
	// Now defaults to time.Now.
	Now func() time.Time
}

type implAggregator struct {
	opts   Options
	logger logger.Logger
	files  []ProcessedFile
	names  map[string]struct{}
}

// New creates an Aggregator writing into opts.OutputDir.
func New(opts Options, log logger.Logger) Aggregator {
	if opts.CombinedName == "" {
		opts.CombinedName = DefaultCombinedName
	}
	if opts.LineEnding == "" {
		opts.LineEnding = "\n"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	names := make(map[string]struct{})
	// Keep individual artifacts from overwriting the combined one.
	reserved := strings.TrimSuffix(opts.CombinedName, filepath.Ext(opts.CombinedName))
	names[strings.ToLower(reserved)] = struct{}{}

	return &implAggregator{
		opts:   opts,
		logger: log,
		names:  names,
	}
}
