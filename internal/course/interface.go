package course

import (
	"context"

	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

// Aggregator collects cleaned subtitle files and writes the transcript artifacts.
type Aggregator interface {
	// RecordFile retains a file whose filtered content is non-empty.
	// Empty content is rejected with an EmptyAfterFilter error.
	RecordFile(ctx context.Context, src scan.SourceFile, content []string) (ProcessedFile, error)
	// EmitIndividualArtifact writes <outputDir>/<name>.txt.
	EmitIndividualArtifact(ctx context.Context, f ProcessedFile) (Artifact, error)
	// BuildCombinedArtifact renders the combined transcript of files.
	BuildCombinedArtifact(files []ProcessedFile) string
	// EmitCombinedArtifact renders and writes the combined transcript.
	EmitCombinedArtifact(ctx context.Context, files []ProcessedFile) (Artifact, error)
	// Files returns the retained files in the order they were recorded.
	Files() []ProcessedFile
}

// Artifact describes one written output file.
type Artifact struct {
	Path  string
	Bytes int
}
