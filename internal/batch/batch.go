package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
	"github.com/nguyentantai21042004/caption-text/internal/course"
	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

var (
	errNotDirectory = errors.New("not a directory")
	errNoSubtitles  = errors.New("no subtitle files found")
)

// Run scans root once, converts every subtitle file in discovery order and
// writes the combined transcript. Per-file failures are counted in the
// result; only pre-flight failures are returned as errors.
func (r *implRunner) Run(ctx context.Context, root string) (Result, error) {
	res := Result{StartedAt: r.now()}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return res, apperr.New(apperr.FatalUnexpected, root, err)
	}
	res.Root = absRoot

	if err := checkRoot(absRoot); err != nil {
		return res, err
	}

	outputDir := filepath.Join(absRoot, r.cfg.Paths.OutputDir)
	res.OutputDir = outputDir

	files, err := scan.SubtitleFiles(absRoot, outputDir, r.cfg.Scan.Extensions, func(path string, err error) {
		r.logger.Warn(ctx, "Cannot read %s, skipped: %v", path, err)
	})
	if err != nil {
		return res, apperr.New(apperr.FatalUnexpected, absRoot, fmt.Errorf("scan: %w", err))
	}
	res.Found = len(files)
	if len(files) == 0 {
		return res, apperr.New(apperr.NoInputFiles, absRoot, errNoSubtitles)
	}

	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Found %d subtitle files in %s", len(files), absRoot)
	r.logger.Info(ctx, "Output: %s", outputDir)
	r.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return res, apperr.New(apperr.FatalUnexpected, outputDir, fmt.Errorf("create output dir: %w", err))
	}

	lock, err := acquireLock(outputDir)
	if err != nil {
		return res, apperr.New(apperr.FatalUnexpected, outputDir, err)
	}
	defer func() {
		if err := lock.release(); err != nil {
			r.logger.Warn(ctx, "Failed to release lock %s: %v", lock.path, err)
		}
	}()

	agg := course.New(course.Options{
		Root:         absRoot,
		OutputDir:    outputDir,
		CombinedName: r.cfg.Paths.CombinedName,
		LineEnding:   r.cfg.Terminator(),
		Now:          r.now,
	}, r.logger)

	if r.observer != nil {
		r.observer.OnStart(len(files))
	}

	for i, src := range files {
		if err := ctx.Err(); err != nil {
			r.logger.Warn(ctx, "Run aborted after %d of %d files", i, len(files))
			res.Files = agg.Files()
			res.FinishedAt = r.now()
			return res, err
		}

		r.logger.Debug(ctx, "[%d/%d] Processing: %s", i+1, len(files), src.RelPath)
		outcome := r.processFile(ctx, agg, src, &res)
		if r.observer != nil {
			r.observer.OnFile(i, src, outcome)
		}
	}

	res.Files = agg.Files()
	if len(res.Files) > 0 {
		art, err := agg.EmitCombinedArtifact(ctx, res.Files)
		if err != nil {
			r.logger.Error(ctx, "Failed to write combined transcript: %v", err)
			res.fail(filepath.Join(outputDir, r.cfg.Paths.CombinedName), err)
		} else {
			res.CombinedPath = art.Path
			res.BytesWritten += int64(art.Bytes)
		}
	} else {
		r.logger.Warn(ctx, "No file produced any spoken text, combined transcript skipped")
	}

	res.FinishedAt = r.now()

	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Run complete: %d converted, %d warnings, %d errors", res.Success, res.Warnings, res.Errors)
	r.logger.Info(ctx, "Processing time: %s", res.Duration())
	r.logger.Info(ctx, "========================================")

	if r.observer != nil {
		r.observer.OnFinish(res)
	}
	return res, nil
}

// processFile runs one file through the filter and the aggregator.
func (r *implRunner) processFile(ctx context.Context, agg course.Aggregator, src scan.SourceFile, res *Result) Outcome {
	content, err := r.cleaner.Clean(ctx, src.AbsPath)
	if err != nil {
		// An unreadable file contributes zero content, like a noise-only one.
		res.warn(src.AbsPath, err)
		return OutcomeSkipped
	}

	f, err := agg.RecordFile(ctx, src, content)
	if err != nil {
		if apperr.Is(err, apperr.EmptyAfterFilter) {
			r.logger.Warn(ctx, "No spoken text in %s, skipped", src.RelPath)
			res.warn(src.AbsPath, err)
			return OutcomeSkipped
		}
		r.logger.Error(ctx, "Failed to record %s: %v", src.RelPath, err)
		res.fail(src.AbsPath, err)
		return OutcomeFailed
	}

	art, err := agg.EmitIndividualArtifact(ctx, f)
	if err != nil {
		r.logger.Error(ctx, "Failed to write %s: %v", src.RelPath, err)
		res.fail(src.AbsPath, err)
		return OutcomeFailed
	}

	res.Success++
	res.BytesWritten += int64(art.Bytes)
	r.logger.Info(ctx, "[DONE] %s -> %s", src.RelPath, filepath.Base(art.Path))
	return OutcomeConverted
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.New(apperr.RootNotFound, root, err)
		}
		return apperr.New(apperr.FatalUnexpected, root, err)
	}
	if !info.IsDir() {
		return apperr.New(apperr.RootNotFound, root, errNotDirectory)
	}
	return nil
}
