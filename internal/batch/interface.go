package batch

import (
	"context"

	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

// Runner converts every subtitle file under a root into transcripts.
type Runner interface {
	Run(ctx context.Context, root string) (Result, error)
}

// Observer is notified as a run progresses. All methods are called from the
// goroutine running the batch.
type Observer interface {
	OnStart(total int)
	OnFile(index int, src scan.SourceFile, outcome Outcome)
	OnFinish(res Result)
}
