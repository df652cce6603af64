// Package pipeline runs gap analyses over request files, one at a time or as a bounded concurrent batch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when BatchOptions.Concurrency is not positive
const DefaultConcurrency = 4

// Progress statuses
const (
	StatusDone   = "done"
	StatusFailed = "failed"
)

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	File    string `json:"file"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Role    string `json:"role,omitempty"`
	Score   int    `json:"score,omitempty"`
}

// ProgressCallback is called as each file finishes. Calls may come from several goroutines.
type ProgressCallback func(event ProgressEvent)

// BatchOptions holds configuration for a batch run
type BatchOptions struct {
	InputPaths   []string
	OutputDir    string // results are written here when set
	RoleOverride string // replaces every request's roleName when set
	Concurrency  int
	OnProgress   ProgressCallback
}

// FileResult is the outcome for one input file
type FileResult struct {
	InputPath  string
	OutputPath string
	Result     *types.AnalysisResult
	Err        error
}

// BatchSummary collects every file's outcome in input order
type BatchSummary struct {
	Results   []FileResult
	Succeeded int
	Failed    int
}

// ListRequestFiles returns the *.json files directly inside dir, sorted by name
func ListRequestFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// OutputPathFor maps an input file to <outputDir>/<base>.result.json
func OutputPathFor(outputDir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, base+".result.json")
}

// RunBatch analyzes every input file with at most Concurrency files in flight.
// A failing file is recorded in its FileResult and does not stop the others;
// the returned error is non-nil only when ctx is cancelled.
func RunBatch(ctx context.Context, analyzer *gap.Analyzer, opts BatchOptions) (*BatchSummary, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]FileResult, len(opts.InputPaths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range opts.InputPaths {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine owns results[i]
			results[i] = analyzeFile(analyzer, path, opts)
			emitProgress(opts, results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	summary := &BatchSummary{Results: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary, nil
}

func analyzeFile(analyzer *gap.Analyzer, path string, opts BatchOptions) FileResult {
	fr := FileResult{InputPath: path}

	req, err := LoadRequest(path)
	if err != nil {
		fr.Err = err
		return fr
	}
	if opts.RoleOverride != "" {
		req.RoleName = opts.RoleOverride
	}

	fr.Result = analyzer.Analyze(*req)

	if opts.OutputDir != "" {
		fr.OutputPath = OutputPathFor(opts.OutputDir, path)
		if err := WriteResult(fr.OutputPath, fr.Result); err != nil {
			fr.Err = err
		}
	}
	return fr
}

// emitProgress calls the progress callback if configured
func emitProgress(opts BatchOptions, fr FileResult) {
	if opts.OnProgress == nil {
		return
	}
	event := ProgressEvent{File: fr.InputPath, Status: StatusDone}
	if fr.Err != nil {
		event.Status = StatusFailed
		event.Message = fr.Err.Error()
	}
	if fr.Result != nil {
		event.Role = fr.Result.Role
		event.Score = fr.Result.OverallMatchScore
	}
	opts.OnProgress(event)
}
