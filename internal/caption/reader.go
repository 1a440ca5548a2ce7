package caption

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	errInvalidUTF8 = errors.New("content is not valid UTF-8")
)

// Clean reads path and filters it down to spoken text. A read or decode
// failure is logged and returned together with an empty line slice.
func (c *implCleaner) Clean(ctx context.Context, path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		c.logger.Warn(ctx, "Failed to read %s, skipped: %v", path, err)
		return []string{}, err
	}

	text := Filter(lines)
	c.logger.Debug(ctx, "Filtered %s: %d of %d lines kept", path, len(text), len(lines))
	return text, nil
}

// ReadLines reads a subtitle file and splits it into raw lines.
// UTF-8 with or without BOM and BOM-marked UTF-16 are accepted.
func ReadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New(apperr.ReadFailure, path, err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, apperr.New(apperr.ReadFailure, path, err)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

func decode(raw []byte) (string, error) {
	isUTF16 := bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
	if !isUTF16 && !utf8.Valid(raw) {
		return "", errInvalidUTF8
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}
