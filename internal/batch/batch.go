package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corpustools/conform/core/confmt"
	"github.com/corpustools/conform/core/convert"
	"github.com/corpustools/conform/core/errors"
	"github.com/corpustools/conform/internal/fileutil"
	"github.com/corpustools/conform/internal/logging"
)

// LogFileName is the per-run conversion log written into the output
// directory.
const LogFileName = "conversion.log"

// Options configures a batch run.
type Options struct {
	// InputDir holds the .ann/.txt pairs to convert.
	InputDir string

	// OutputDir receives one .con file per converted annotation file,
	// plus the conversion log.
	OutputDir string

	// CopyText also copies each consumed text file into OutputDir.
	CopyText bool

	// Workers is the number of documents converted concurrently.
	// Defaults to GOMAXPROCS.
	Workers int

	// ReportDB, when set, is the path of a SQLite database receiving
	// one row per converted file.
	ReportDB string
}

// FileResult is the outcome for one document pair.
type FileResult struct {
	Pair        Pair
	OutputPath  string
	Fingerprint string
	Annotations int
	Warnings    int
	Duration    time.Duration
	Err         error
}

// Result summarizes a batch run.
type Result struct {
	RunID       string
	Files       []FileResult
	Converted   int
	Annotations int
	Warnings    int
	Failed      int
}

// Run converts every annotation/text pair in opts.InputDir. A pair that
// fails conversion is recorded in the result and the batch continues;
// discovering zero pairs fails the whole run with ErrEmptyBatch.
func Run(ctx context.Context, opts Options) (*Result, error) {
	pairs, err := DiscoverPairs(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyBatch,
			"no annotation files with a matching text file in %s", opts.InputDir)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.NewIO("create directory", opts.OutputDir, err)
	}

	logFile, err := os.Create(filepath.Join(opts.OutputDir, LogFileName))
	if err != nil {
		return nil, errors.NewIO("create", filepath.Join(opts.OutputDir, LogFileName), err)
	}
	defer logFile.Close()
	logger := logging.NewLogger(logFile, logging.LevelWarn, logging.FormatText)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers <= 0 {
			workers = 1
		}
	}

	start := time.Now()
	tasks := make(chan int, len(pairs))
	results := make([]FileResult, len(pairs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					results[i] = convertPair(pairs[i], opts, logger)
				}
			}
		}()
	}

	for i := range pairs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Files: results,
	}
	for _, fr := range results {
		if fr.Err != nil {
			result.Failed++
			continue
		}
		result.Converted++
		result.Annotations += fr.Annotations
		result.Warnings += fr.Warnings
	}

	if opts.ReportDB != "" {
		report, err := OpenReport(opts.ReportDB)
		if err != nil {
			return nil, err
		}
		defer report.Close()
		if err := report.RecordRun(result); err != nil {
			return nil, err
		}
	}

	logging.BatchSummary(result.Converted, result.Annotations, result.Warnings, time.Since(start))
	return result, nil
}

// convertPair handles a single document pair, writing its con output
// into the configured output directory.
func convertPair(p Pair, opts Options, logger *slog.Logger) FileResult {
	start := time.Now()
	fr := FileResult{Pair: p}

	reporter := convert.ReporterFunc(func(msg string) {
		logger.Warn("skipped_line", "file", p.AnnPath, "detail", msg)
	})

	res, doc, err := p.Convert(reporter)
	if err != nil {
		fr.Err = err
		fr.Duration = time.Since(start)
		logger.Error("conversion_failed", "file", p.AnnPath, "error", err.Error())
		return fr
	}

	outPath := filepath.Join(opts.OutputDir, p.Base+con.Extension)
	if err := os.WriteFile(outPath, []byte(res.Output), 0644); err != nil {
		fr.Err = errors.NewIO("write", outPath, err)
		fr.Duration = time.Since(start)
		return fr
	}

	if opts.CopyText {
		dst := filepath.Join(opts.OutputDir, filepath.Base(p.TextPath))
		if err := fileutil.CopyFile(p.TextPath, dst); err != nil {
			fr.Err = err
			fr.Duration = time.Since(start)
			return fr
		}
	}

	fr.OutputPath = outPath
	fr.Fingerprint = doc.Fingerprint()
	fr.Annotations = res.Annotations
	fr.Warnings = res.Warnings
	fr.Duration = time.Since(start)

	logging.DocumentConverted(p.AnnPath, fr.Fingerprint, fr.Annotations)
	return fr
}

// String renders a short human-readable summary of the run.
func (r *Result) String() string {
	return fmt.Sprintf("converted %d file(s), %d annotation(s), %d warning(s), %d failed",
		r.Converted, r.Annotations, r.Warnings, r.Failed)
}
