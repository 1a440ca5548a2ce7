package course

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
)

const (
	combinedTitle   = "COMPLETE COURSE TRANSCRIPT"
	timestampLayout = "2006-01-02 15:04:05"
)

var (
	fullSeparator = strings.Repeat("=", 80)
	halfSeparator = strings.Repeat("-", 40)
)

// BuildCombinedArtifact merges files into one transcript: a fixed header,
// then every file in course order with a section banner whenever the folder
// changes.
func (a *implAggregator) BuildCombinedArtifact(files []ProcessedFile) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString(a.opts.LineEnding)
	}

	line(combinedTitle)
	line("Generated: " + a.opts.Now().Format(timestampLayout))
	line(fmt.Sprintf("Total files: %d", len(files)))
	line("Source: " + a.opts.Root)
	line(fullSeparator)
	line("")

	prevFolder := ""
	for i, f := range SortFiles(files) {
		if i == 0 || f.FolderName != prevFolder {
			line(fullSeparator)
			line("SECTION: " + f.FolderName)
			line(fullSeparator)
			line("")
			prevFolder = f.FolderName
		}

		line("=== " + f.Name + " ===")
		for _, text := range f.Content {
			line(text)
		}
		line("")
		line(halfSeparator)
		line("")
	}

	return b.String()
}

func (a *implAggregator) EmitCombinedArtifact(ctx context.Context, files []ProcessedFile) (Artifact, error) {
	text := a.BuildCombinedArtifact(files)
	path := filepath.Join(a.opts.OutputDir, a.opts.CombinedName)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return Artifact{}, apperr.New(apperr.WriteFailure, path, err)
	}

	a.logger.Info(ctx, "Combined transcript written: %s (%d files)", path, len(files))
	return Artifact{Path: path, Bytes: len(text)}, nil
}
