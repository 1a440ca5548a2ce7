package caption

import (
	"github.com/nguyentantai21042004/caption-text/internal/logger"
)

type implCleaner struct {
	logger logger.Logger
}

// New creates a Cleaner that logs read failures through log.
func New(log logger.Logger) Cleaner {
	return &implCleaner{
		logger: log,
	}
}
