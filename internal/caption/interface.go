package caption

import "context"

// Cleaner reads one subtitle file and returns its spoken-text lines.
type Cleaner interface {
	Clean(ctx context.Context, path string) ([]string, error)
}
