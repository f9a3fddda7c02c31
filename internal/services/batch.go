package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/scrub/pkg/scrub"
)

// BatchRequest describes a multi-file scrub.
type BatchRequest struct {
	// Patterns are doublestar globs (** matches any number of directories).
	Patterns []string

	// Exclude drops matches by glob, tested against both the matched path and
	// the path relative to its pattern's static base.
	Exclude []string

	// OutDir mirrors each match under this directory, relative to the
	// static base of the pattern that found it.
	OutDir string

	// InPlace rewrites every match. Mutually exclusive with OutDir.
	InPlace bool

	HeaderLines  int
	DetectHeader bool
	DryRun       bool

	// Workers bounds concurrent files. Values below 1 use DefaultWorkers.
	Workers int
}

// FileOutcome is the result of scrubbing one file in a batch.
type FileOutcome struct {
	Input  string
	Output string
	Result *scrub.Result
	Err    error
}

// BatchResult collects per-file outcomes sorted by input path.
type BatchResult struct {
	Files  []FileOutcome
	Failed int
}

// Written returns the number of files whose output was rewritten.
func (r *BatchResult) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Result != nil && f.Result.Written {
			n++
		}
	}
	return n
}

type batchJob struct {
	input  string
	output string
}

// ScrubBatch expands req.Patterns and scrubs every match concurrently.
// A failing file does not stop the others; the returned error joins every
// per-file failure. Cancelling ctx stops scheduling new files.
func (s *Scrubber) ScrubBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if err := validateBatch(req); err != nil {
		return nil, err
	}

	jobs, err := s.expand(req)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no files matched %v: %w", req.Patterns, scrub.ErrInputNotFound)
	}

	workers := req.Workers
	if workers < 1 {
		workers = scrub.DefaultWorkers
	}
	s.logger.Verbose("Scrubbing %d file(s) with %d worker(s)", len(jobs), workers)

	outcomes := make([]FileOutcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.ScrubFile(gctx, Request{
				Input:        job.input,
				Output:       job.output,
				HeaderLines:  req.HeaderLines,
				DetectHeader: req.DetectHeader,
				DryRun:       req.DryRun,
			})
			outcomes[i] = FileOutcome{Input: job.input, Output: job.output, Result: res, Err: err}
			if err != nil {
				s.logger.Error("%v", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{Files: outcomes}
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			result.Failed++
			errs = append(errs, o.Err)
		}
	}

	return result, errors.Join(errs...)
}

func validateBatch(req BatchRequest) error {
	if len(req.Patterns) == 0 {
		return fmt.Errorf("%w: at least one pattern is required", scrub.ErrInvalidConfig)
	}
	if req.OutDir != "" && req.InPlace {
		return fmt.Errorf("%w: --out-dir and --in-place are mutually exclusive", scrub.ErrInvalidConfig)
	}
	if req.OutDir == "" && !req.InPlace && !req.DryRun {
		return fmt.Errorf("%w: batch mode needs --out-dir, --in-place or --dry-run", scrub.ErrInvalidConfig)
	}
	if req.HeaderLines < 0 {
		return fmt.Errorf("%w: %d", scrub.ErrInvalidHeaderLineCount, req.HeaderLines)
	}
	for _, ex := range req.Exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(ex)) {
			return fmt.Errorf("%w: invalid exclude pattern %q", scrub.ErrInvalidConfig, ex)
		}
	}
	return nil
}

// expand resolves patterns into de-duplicated jobs sorted by input path.
func (s *Scrubber) expand(req BatchRequest) ([]batchJob, error) {
	seen := make(map[string]bool)
	var jobs []batchJob

	for _, pattern := range req.Patterns {
		matches, err := s.fs.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", scrub.ErrInvalidConfig, err)
		}
		if len(matches) == 0 {
			s.logger.Info("Pattern %q matched no files", pattern)
			continue
		}

		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))

		for _, match := range matches {
			rel := relativeTo(base, match)
			if seen[match] || excluded(req.Exclude, match, rel) {
				continue
			}
			seen[match] = true

			job := batchJob{input: match}
			switch {
			case req.InPlace:
				job.output = match
			case req.OutDir != "":
				job.output = filepath.Join(req.OutDir, filepath.FromSlash(rel))
			}
			jobs = append(jobs, job)
		}
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].input < jobs[j].input })
	if err := checkOutputs(jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// checkOutputs rejects job sets where two inputs share an output file, or
// where one file's output would overwrite another job's input.
func checkOutputs(jobs []batchJob) error {
	inputs := make(map[string]string, len(jobs))
	for _, job := range jobs {
		inputs[filepath.Clean(job.input)] = job.input
	}

	owners := make(map[string]string, len(jobs))
	for _, job := range jobs {
		if job.output == "" || job.output == job.input {
			continue
		}
		out := filepath.Clean(job.output)
		if other, ok := owners[out]; ok {
			return fmt.Errorf("%w: %s and %s both map to output %s",
				scrub.ErrInvalidConfig, other, job.input, job.output)
		}
		owners[out] = job.input
		if other, ok := inputs[out]; ok {
			return fmt.Errorf("%w: output of %s would overwrite input %s",
				scrub.ErrInvalidConfig, job.input, other)
		}
	}
	return nil
}

// relativeTo returns match relative to the pattern base, in slash form.
func relativeTo(base, match string) string {
	slashed := filepath.ToSlash(match)
	if base == "" || base == "." {
		return slashed
	}
	rel, err := filepath.Rel(filepath.FromSlash(base), match)
	if err != nil {
		return slashed
	}
	return filepath.ToSlash(rel)
}

func excluded(patterns []string, match, rel string) bool {
	slashed := filepath.ToSlash(match)
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if ok, _ := doublestar.Match(p, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
