package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the subtitle formats picked up when none are configured.
var DefaultExtensions = []string{".srt", ".vtt"}

// SourceFile is one subtitle file discovered under the scan root.
type SourceFile struct {
	AbsPath string
	RelPath string
	// Stem is the file name without its extension.
	Stem string
	Ext  string
}

// SkipFunc is told about every entry the walk could not read and left out.
type SkipFunc func(path string, err error)

// SubtitleFiles walks root once and returns every subtitle file in walk order.
// Anything under outputDir is skipped. Extensions are compared
// case-insensitively. An unreadable entry below root is reported to onSkip
// and left out; only a failure on root itself is returned.
func SubtitleFiles(root, outputDir string, extensions []string, onSkip SkipFunc) ([]SourceFile, error) {
	root = filepath.Clean(root)
	if outputDir != "" {
		outputDir = filepath.Clean(outputDir)
	}
	exts := normalizeExtensions(extensions)

	files := make([]SourceFile, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return skipUnreadable(root, path, d, walkErr, onSkip)
		}

		if outputDir != "" && IsUnder(path, outputDir) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		name := d.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := exts[ext]; !ok {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, SourceFile{
			AbsPath: path,
			RelPath: rel,
			Stem:    strings.TrimSuffix(name, filepath.Ext(name)),
			Ext:     ext,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// skipUnreadable decides how the walk continues after it failed on path.
func skipUnreadable(root, path string, d fs.DirEntry, err error, onSkip SkipFunc) error {
	if path == root {
		return err
	}
	if onSkip != nil {
		onSkip(path, err)
	}
	if d != nil && d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

// IsSubtitle reports whether path has one of the given extensions.
func IsSubtitle(path string, extensions []string) bool {
	_, ok := normalizeExtensions(extensions)[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsUnder reports whether path equals base or lies inside it.
func IsUnder(path, base string) bool {
	path = filepath.Clean(path)
	base = filepath.Clean(base)
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, base+sep)
}

func normalizeExtensions(extensions []string) map[string]struct{} {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	out := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out[e] = struct{}{}
	}
	return out
}
