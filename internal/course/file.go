package course

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

// RootFolder labels files that sit directly in the scan root.
const RootFolder = "Root"

var errNoSpokenText = errors.New("no spoken text after filtering")

// ProcessedFile is one cleaned subtitle file. It is never mutated after
// construction.
type ProcessedFile struct {
	Name         string
	Content      []string
	SourcePath   string
	RelativePath string
	FolderName   string
}

// NewProcessedFile builds a ProcessedFile named name. Empty content is
// rejected with an EmptyAfterFilter error.
func NewProcessedFile(name string, src scan.SourceFile, content []string) (ProcessedFile, error) {
	if len(content) == 0 {
		return ProcessedFile{}, apperr.New(apperr.EmptyAfterFilter, src.AbsPath, errNoSpokenText)
	}

	return ProcessedFile{
		Name:         name,
		Content:      append([]string(nil), content...),
		SourcePath:   src.AbsPath,
		RelativePath: src.RelPath,
		FolderName:   FolderName(src.RelPath),
	}, nil
}

// FolderName returns the immediate parent directory of relPath, or
// RootFolder when the file has no parent inside the scan root.
func FolderName(relPath string) string {
	dir := filepath.Dir(relPath)
	if dir == "." || dir == string(filepath.Separator) || dir == "" {
		return RootFolder
	}
	return filepath.Base(dir)
}

func (a *implAggregator) RecordFile(ctx context.Context, src scan.SourceFile, content []string) (ProcessedFile, error) {
	base := SanitizeName(src.Stem)
	name := a.uniqueName(base)

	f, err := NewProcessedFile(name, src, content)
	if err != nil {
		return ProcessedFile{}, err
	}

	if name != base {
		a.logger.Warn(ctx, "Output name %q already used, writing %s as %q", base, src.RelPath, name)
	}
	a.names[strings.ToLower(name)] = struct{}{}
	a.files = append(a.files, f)
	return f, nil
}

func (a *implAggregator) Files() []ProcessedFile {
	return append([]ProcessedFile(nil), a.files...)
}

// uniqueName appends " (2)", " (3)", ... until base no longer collides with
// a name already handed out. Comparison ignores case so artifacts stay
// distinct on case-insensitive file systems.
func (a *implAggregator) uniqueName(base string) string {
	if _, taken := a.names[strings.ToLower(base)]; !taken {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", base, n)
		if _, taken := a.names[strings.ToLower(candidate)]; !taken {
			return candidate
		}
	}
}
