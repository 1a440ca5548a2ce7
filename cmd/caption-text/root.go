package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-text/internal/apperr"
	"github.com/nguyentantai21042004/caption-text/internal/batch"
	"github.com/nguyentantai21042004/caption-text/internal/caption"
	"github.com/nguyentantai21042004/caption-text/internal/config"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/watcher"
	"github.com/nguyentantai21042004/caption-text/pkg/executor"
)

type rootOptions struct {
	configPath string
	logLevel   string
	watch      bool
	open       bool
	noProgress bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "caption-text [root]",
		Short: "Convert .srt and .vtt subtitles into plain-text transcripts",
		Long: `caption-text scans a course folder for .srt and .vtt subtitle files,
strips timing cues, indexes, headers and markup, and writes one transcript
per file plus 00-COMBINED-ALL.txt into <root>/Subtitles.

When root is omitted the folder containing the executable is used, falling
back to the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Optional YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Keep running and convert again when subtitles change")
	flags.BoolVar(&opts.open, "open", false, "Open the output folder when the run finishes")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress bar")

	return rootCmd
}

func runRoot(ctx context.Context, stdout, stderr io.Writer, args []string, opts rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	root := cfg.Paths.Root
	if len(args) == 1 {
		root = args[0]
	}
	if root == "" {
		root = defaultRoot()
	}

	showProgress := !opts.noProgress && !opts.watch && isTerminal(stderr)
	level := cfg.Logging.Level
	if showProgress && opts.logLevel == "" && level != "debug" {
		// Info lines would tear through the progress bar.
		level = "warn"
	}

	log := logger.NewWithWriter(level, stderr)
	ctx = logger.WithRunID(ctx, uuid.NewString()[:8])

	cleaner := caption.New(log)
	runOpts := []batch.Option{}
	if showProgress {
		runOpts = append(runOpts, batch.WithObserver(newProgressObserver(stderr)))
	}
	runner := batch.New(cfg, cleaner, log, runOpts...)

	res, err := runner.Run(ctx, root)
	renderSummary(stdout, res)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		renderFatal(stderr, err)
		return &reportedError{err: err}
	}

	if opts.open {
		if err := executor.OpenFolder(ctx, executor.New(), res.OutputDir); err != nil {
			log.Warn(ctx, "Failed to open output folder: %v", err)
		}
	}

	if opts.watch {
		return watchAndRerun(ctx, stdout, cfg, runner, log, res)
	}
	return nil
}

func loadConfig(opts rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.logLevel != "" {
		if !logger.ValidLevel(opts.logLevel) {
			return nil, fmt.Errorf("--log-level must be debug, info, warn or error, got %q", opts.logLevel)
		}
		cfg.Logging.Level = opts.logLevel
	}
	return cfg, nil
}

func watchAndRerun(ctx context.Context, stdout io.Writer, cfg *config.Config, runner batch.Runner, log logger.Logger, first batch.Result) error {
	rerun := func(ctx context.Context, changed string) error {
		log.Info(ctx, "Change detected in %s, converting again", changed)
		res, err := runner.Run(ctx, first.Root)
		renderSummary(stdout, res)
		if err != nil && apperr.Is(err, apperr.NoInputFiles) {
			log.Warn(ctx, "No subtitle files left under %s", first.Root)
			return nil
		}
		return err
	}

	w, err := watcher.New(watcher.Options{
		Root:       first.Root,
		OutputDir:  first.OutputDir,
		Extensions: cfg.Scan.Extensions,
		Debounce:   cfg.Watch.Debounce,
	}, rerun, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// defaultRoot is the folder holding the executable, or the working
// directory when that cannot be determined.
func defaultRoot() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
