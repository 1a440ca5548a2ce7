package course

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
)

// ArtifactPath returns where the individual transcript of f is written.
func (a *implAggregator) ArtifactPath(f ProcessedFile) string {
	return filepath.Join(a.opts.OutputDir, f.Name+".txt")
}

func (a *implAggregator) EmitIndividualArtifact(ctx context.Context, f ProcessedFile) (Artifact, error) {
	path := a.ArtifactPath(f)
	text := strings.Join(f.Content, a.opts.LineEnding)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return Artifact{}, apperr.New(apperr.WriteFailure, path, err)
	}

	a.logger.Debug(ctx, "Transcript written: %s (%d lines)", path, len(f.Content))
	return Artifact{Path: path, Bytes: len(text)}, nil
}
