package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/berch-t/youtube-to-courses/internal/ingest"
	"github.com/berch-t/youtube-to-courses/internal/pipeline"
	"github.com/berch-t/youtube-to-courses/internal/transcriber"
	"github.com/berch-t/youtube-to-courses/internal/watcher"
	"golang.org/x/sync/errgroup"
)

func (a *app) build(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	out := fs.String("o", "", "output Markdown path (default: paths.output/<name>.md)")
	flags, err := bindOptions(fs, a.cfg.Build)
	if err != nil {
		a.log.Error(ctx, "%v", err)
		return 1
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "build needs exactly one transcript path")
		return 2
	}
	opts, err := flags.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		return 2
	}

	in := fs.Arg(0)
	if *out == "" {
		*out = outputFor(a.cfg.Paths.Output, in)
	}

	res, err := a.builder.Build(ctx, in, *out, opts)
	if err != nil {
		a.log.Error(ctx, "Build failed: %v", err)
		return 1
	}
	printResult(res)
	return 0
}

func (a *app) batch(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	outDir := fs.String("o", a.cfg.Paths.Output, "output directory")
	flags, err := bindOptions(fs, a.cfg.Build)
	if err != nil {
		a.log.Error(ctx, "%v", err)
		return 1
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "batch needs exactly one directory")
		return 2
	}
	opts, err := flags.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		return 2
	}

	inputs, err := transcripts(fs.Arg(0))
	if err != nil {
		a.log.Error(ctx, "%v", err)
		return 1
	}
	a.log.Info(ctx, "Batch: %d transcripts, %d at a time", len(inputs), a.cfg.Performance.MaxConcurrent)
	outputs := batchOutputs(*outDir, inputs)

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Performance.MaxConcurrent)
	for _, in := range inputs {
		g.Go(func() error {
			res, err := a.builder.Build(gctx, in, outputs[in], opts)
			if err != nil {
				// one bad transcript must not cancel the others
				a.log.Error(gctx, "Build of %s failed: %v", in, err)
				failed.Add(1)
				return nil
			}
			printResult(res)
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		a.log.Error(ctx, "Batch finished with %d of %d builds failed", n, len(inputs))
		return 1
	}
	a.log.Info(ctx, "Batch finished: %d builds", len(inputs))
	return 0
}

func (a *app) watch(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	flags, err := bindOptions(fs, a.cfg.Build)
	if err != nil {
		a.log.Error(ctx, "%v", err)
		return 1
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts, err := flags.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		return 2
	}

	paths := a.cfg.Paths
	if err := ensureDirectories(paths.Input, paths.Output, paths.Archived, paths.Temp); err != nil {
		a.log.Error(ctx, "Failed to create directories: %v", err)
		return 1
	}

	ledger := a.ledger(ctx)
	a.closers = append(a.closers, ledger.Close)

	handler := func(ctx context.Context, path string) error {
		in := path
		if transcriber.IsMedia(path) {
			res, err := a.transcriber.Transcribe(ctx, path, outputFor(filepath.Join(paths.Output, "transcripts"), path))
			if err != nil {
				return fmt.Errorf("transcribe: %w", err)
			}
			in = res.TranscriptPath
		}
		res, err := a.builder.Build(ctx, in, outputFor(paths.Output, path), opts)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	}

	w, err := watcher.New(watcher.Options{
		InputDir:      paths.Input,
		ArchiveDir:    paths.Archived,
		MaxConcurrent: a.cfg.Performance.MaxConcurrent,
		Accept:        func(p string) bool { return isTranscript(p) || transcriber.IsMedia(p) },
	}, handler, ledger, a.log)
	if err != nil {
		a.log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Course builder is watching %s", paths.Input)
	a.log.Info(ctx, "Output: %s, archive: %s", paths.Output, paths.Archived)
	a.log.Info(ctx, "Concurrent builds: %d", a.cfg.Performance.MaxConcurrent)
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.log.Error(ctx, "Watcher error: %v", err)
		return 1
	}
	a.log.Info(context.Background(), "Course builder stopped")
	return 0
}

func (a *app) transcribe(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("transcribe", flag.ContinueOnError)
	out := fs.String("o", "", "transcript path (default: paths.output/transcripts/<name>.md)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "transcribe needs exactly one media file")
		return 2
	}

	for _, tool := range []string{"ffmpeg", "ffprobe", a.cfg.Whisper.BinaryPath} {
		if _, err := a.executor.LookPath(tool); err != nil {
			a.log.Error(ctx, "%v", err)
			return 1
		}
	}

	in := fs.Arg(0)
	if *out == "" {
		*out = outputFor(filepath.Join(a.cfg.Paths.Output, "transcripts"), in)
	}

	res, err := a.transcriber.Transcribe(ctx, in, *out)
	if err != nil {
		a.log.Error(ctx, "Transcription failed: %v", err)
		return 1
	}
	fmt.Printf("%s (%d chunks, %s)\n", res.TranscriptPath, res.Chunks, ingest.FormatTimestamp(res.MediaDuration))
	return 0
}

// ledger prefers the shared Redis set and degrades to memory.
func (a *app) ledger(ctx context.Context) watcher.Ledger {
	if a.cfg.Redis.URL == "" {
		return watcher.NewMemoryLedger()
	}
	l, err := watcher.NewRedisLedger(ctx, a.cfg.Redis.URL, a.cfg.Redis.KeyPrefix)
	if err != nil {
		a.log.Warn(ctx, "Redis ledger unavailable, using in-memory ledger: %v", err)
		return watcher.NewMemoryLedger()
	}
	if n, err := l.Count(ctx); err == nil {
		a.log.Info(ctx, "Redis ledger connected: %d inputs already processed", n)
	}
	return l
}

func isTranscript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".txt":
		return true
	}
	return false
}

func transcripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isTranscript(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transcripts in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// outputFor maps an input file to dir/<name>.md.
func outputFor(dir, in string) string {
	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, name+".md")
}

// batchOutputs assigns every input its own output. Inputs sharing a stem,
// such as lecture.md and lecture.txt, keep their extension: lecture.txt.md.
func batchOutputs(dir string, inputs []string) map[string]string {
	stems := make(map[string]int, len(inputs))
	for _, in := range inputs {
		stems[strings.ToLower(outputFor(dir, in))]++
	}
	out := make(map[string]string, len(inputs))
	for _, in := range inputs {
		p := outputFor(dir, in)
		if stems[strings.ToLower(p)] > 1 {
			p = filepath.Join(dir, filepath.Base(in)+".md")
		}
		out[in] = p
	}
	return out
}

func printResult(res *pipeline.Result) {
	fmt.Printf("%s: %q, %d modules", res.OutputPath, res.Title, len(res.Modules))
	if res.QualityPath != "" {
		fmt.Printf(", quality %.2f", res.Quality.OverallScore)
	}
	if res.Citations != nil {
		fmt.Printf(", %d citations", res.Citations.TotalCitations)
	}
	for _, e := range res.Exports {
		fmt.Printf(", %s", e)
	}
	fmt.Println()
}
