package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/vvka-141/scrub/internal/assembler"
	"github.com/vvka-141/scrub/internal/checksum"
	"github.com/vvka-141/scrub/internal/files/filesystem"
	"github.com/vvka-141/scrub/internal/header"
	"github.com/vvka-141/scrub/internal/lexer"
	"github.com/vvka-141/scrub/internal/report"
	"github.com/vvka-141/scrub/pkg/scrub"
)

// Request describes one single-file scrub.
type Request struct {
	// Input is the file to scrub.
	Input string

	// Output is the destination file. Empty means the caller prints
	// Result.Output itself (stdout).
	Output string

	// HeaderLines is the number of leading lines copied verbatim.
	HeaderLines int

	// DetectHeader asks the approver to keep an auto-detected comment
	// header when HeaderLines is zero.
	DetectHeader bool

	// DryRun computes the result and report without touching the filesystem.
	DryRun bool
}

// ScrubberOption configures a Scrubber.
type ScrubberOption func(*Scrubber)

// WithScanner replaces the default lexer.
func WithScanner(scanner *lexer.Scanner) ScrubberOption {
	return func(s *Scrubber) {
		s.scanner = scanner
	}
}

// WithChecksum replaces the default SHA-256 calculator.
func WithChecksum(calc checksum.Calculator) ScrubberOption {
	return func(s *Scrubber) {
		s.checksum = calc
	}
}

// WithApprover sets who decides on auto-detected headers. Without one,
// detected headers are never kept.
func WithApprover(approver scrub.Approver) ScrubberOption {
	return func(s *Scrubber) {
		s.approver = approver
	}
}

// Scrubber runs the scrub pipeline: split header, scan, assemble, report.
// Safe for concurrent use; approver calls are serialized so prompts never
// interleave.
type Scrubber struct {
	fs       filesystem.FileSystemProvider
	logger   scrub.Logger
	scanner  *lexer.Scanner
	checksum checksum.Calculator
	approver scrub.Approver

	approveMu sync.Mutex
}

// NewScrubber creates a Scrubber.
// Panics on nil fs or logger: these are wiring errors, not runtime conditions.
func NewScrubber(fsys filesystem.FileSystemProvider, logger scrub.Logger, opts ...ScrubberOption) *Scrubber {
	if fsys == nil {
		panic("filesystem cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Scrubber{
		fs:       fsys,
		logger:   logger,
		scanner:  lexer.New(),
		checksum: checksum.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrubText scrubs src in memory. The first headerLines lines are kept
// verbatim. Lexical errors carry positions in src coordinates.
func (s *Scrubber) ScrubText(src string, headerLines int) (*scrub.Result, error) {
	head, body, err := header.Split(src, headerLines)
	if err != nil {
		return nil, err
	}

	spans, err := s.scanner.Scan(body)
	if err != nil {
		var scanErr *lexer.ScanError
		if errors.As(err, &scanErr) {
			scanErr.Shift(headerLines, len(head))
		}
		return nil, err
	}

	asm := assembler.Assemble(head, body, spans, headerLines+1)
	rep := report.Build(src, asm.Text, asm.CommentBytes, asm.CommentSpans)

	return &scrub.Result{
		Output:         asm.Text,
		CommentBytes:   asm.CommentBytes,
		CommentSpans:   asm.CommentSpans,
		LineComments:   asm.LineComments,
		BlockComments:  asm.BlockComments,
		LinesChanged:   rep.Summary.LinesChanged,
		HeaderLines:    headerLines,
		Removals:       asm.Removals,
		Report:         rep,
		InputChecksum:  s.checksum.CalculateRaw([]byte(src)),
		OutputChecksum: s.checksum.CalculateRaw([]byte(asm.Text)),
	}, nil
}

// ScrubFile reads req.Input, scrubs it, and writes req.Output unless this is
// a dry run or no output was requested. Errors wrap the scrub sentinels and
// name the offending path. A failed run never leaves a partial output.
func (s *Scrubber) ScrubFile(ctx context.Context, req Request) (*scrub.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Verbose("Scrubbing %s", req.Input)

	data, err := s.fs.ReadFile(req.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", req.Input, scrub.ErrInputNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", req.Input, scrub.ErrInputReadFailure, err)
	}
	src := string(data)

	headerLines, err := s.resolveHeader(ctx, src, req)
	if err != nil {
		return nil, err
	}

	result, err := s.ScrubText(src, headerLines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Input, err)
	}
	s.logResult(result)

	if req.DryRun || req.Output == "" {
		return result, nil
	}

	written, err := s.write(req.Input, req.Output, result)
	if err != nil {
		return nil, err
	}
	result.Written = written
	return result, nil
}

// resolveHeader returns the header line count for req, consulting the
// approver when detection is enabled and no explicit count was given.
func (s *Scrubber) resolveHeader(ctx context.Context, src string, req Request) (int, error) {
	if !req.DetectHeader || req.HeaderLines != 0 {
		return req.HeaderLines, nil
	}

	detection := header.Detect(src, s.scanner)
	if detection.Lines == 0 {
		s.logger.Verbose("No header detected in %s", req.Input)
		return 0, nil
	}
	s.logger.Verbose("Detected %d header line(s) in %s", detection.Lines, req.Input)

	if s.approver == nil {
		return 0, nil
	}

	s.approveMu.Lock()
	defer s.approveMu.Unlock()

	approved, err := s.approver.ApproveHeader(ctx, detection)
	if err != nil {
		return 0, fmt.Errorf("%s: header confirmation failed: %w", req.Input, err)
	}
	if !approved {
		return 0, nil
	}
	return detection.Lines, nil
}

// write persists result.Output to output, keeping the input's permissions.
// Returns false without writing when output already holds the same bytes.
func (s *Scrubber) write(input, output string, result *scrub.Result) (bool, error) {
	if existing, err := s.fs.ReadFile(output); err == nil && s.checksum.Matches(existing, result.OutputChecksum) {
		s.logger.Verbose("%s is already up to date", output)
		return false, nil
	}

	perm := filesystem.DefaultFileMode
	if info, err := s.fs.Stat(input); err == nil {
		perm = info.Mode().Perm()
	}

	if err := s.fs.WriteFile(output, []byte(result.Output), perm); err != nil {
		return false, fmt.Errorf("%s: %w: %w", output, scrub.ErrOutputWriteFailure, err)
	}
	s.logger.Verbose("Wrote %s", output)
	return true, nil
}

func (s *Scrubber) logResult(result *scrub.Result) {
	for _, removal := range result.Removals {
		s.logger.Verbose("%s", removal.Describe())
	}
	s.logger.Verbose("Removed %d line comment(s) and %d block comment(s), %d byte(s)",
		result.LineComments, result.BlockComments, result.CommentBytes)
	if result.HeaderLines > 0 {
		s.logger.Verbose("Kept %d header line(s)", result.HeaderLines)
	}
	s.logger.Verbose("Checksum %s -> %s",
		checksum.Short(result.InputChecksum), checksum.Short(result.OutputChecksum))
}
