package caption

import (
	"regexp"
	"strings"
)

const vttHeader = "WEBVTT"

var (
	// VTT comment and style blocks.
	blockPrefixes = []string{"NOTE", "STYLE"}
	// Header metadata written by YouTube-style VTT exports.
	metadataPrefixes = []string{"Kind:", "Language:"}

	reCueTiming  = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}.*-->`)
	reCueIndex   = regexp.MustCompile(`^\d+$`)
	reAnnotation = regexp.MustCompile(`^\[.*\]$`)
	reMarkupLine = regexp.MustCompile(`^<.*>$`)
)

// IsDiscarded reports whether line is caption syntax rather than spoken text.
// The line is trimmed first; the result depends on nothing else.
func IsDiscarded(line string) bool {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return true
	case line == vttHeader:
		return true
	case hasAnyPrefix(line, blockPrefixes):
		return true
	case reCueTiming.MatchString(line):
		return true
	case reCueIndex.MatchString(line):
		return true
	case hasAnyPrefix(line, metadataPrefixes):
		return true
	case reAnnotation.MatchString(line):
		return true
	case reMarkupLine.MatchString(line):
		return true
	}
	return false
}

// Filter returns the trimmed spoken-text lines of a subtitle body in their
// original order.
func Filter(lines []string) []string {
	out := make([]string, 0, len(lines)/2)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if IsDiscarded(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
