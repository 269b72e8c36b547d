// Package dump prints every matched source file under a root directory to a
// writer, one block per file, in traversal order.
package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harrison/srcdump/internal/fileutil"
	"github.com/harrison/srcdump/internal/logger"
	"github.com/harrison/srcdump/internal/models"
)

// Logger receives diagnostics about a run. It never writes to the dump output.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
	LogSummary(summary models.Summary)
}

// Policy decides what happens when a matched file cannot be read.
type Policy int

const (
	// PolicyHalt stops the run at the first unreadable file.
	PolicyHalt Policy = iota
	// PolicyContinue prints a diagnostic in place of the content and moves on.
	// The run still returns an error listing every failure.
	PolicyContinue
)

// String returns the string representation of Policy.
func (p Policy) String() string {
	switch p {
	case PolicyHalt:
		return "halt"
	case PolicyContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Dumper walks a root directory and writes a block for every file whose name
// ends with the configured suffix.
type Dumper struct {
	root      string
	suffix    string
	out       io.Writer
	logger    Logger
	policy    Policy
	lockReads bool
}

// Option configures a Dumper.
type Option func(*Dumper)

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(l Logger) Option {
	return func(d *Dumper) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPolicy sets the read failure policy. Defaults to PolicyHalt.
func WithPolicy(p Policy) Option {
	return func(d *Dumper) {
		d.policy = p
	}
}

// WithLockedReads reads every file under a shared advisory lock.
func WithLockedReads(enabled bool) Option {
	return func(d *Dumper) {
		d.lockReads = enabled
	}
}

// New creates a Dumper for root writing to out.
func New(root string, out io.Writer, opts ...Option) *Dumper {
	d := &Dumper{
		root:   root,
		suffix: fileutil.SwiftSuffix,
		out:    out,
		logger: logger.NewNoOpLogger(),
		policy: PolicyHalt,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run walks the tree and writes one block per matched file.
//
// Under PolicyHalt the first read failure ends the run and is returned as a
// *models.ReadError; blocks already written stay written. Under
// PolicyContinue failures are collected and returned together as a
// *models.DumpError after the walk completes. A directory that cannot be
// listed ends the run under either policy.
func (d *Dumper) Run() (models.Summary, error) {
	start := time.Now()
	summary := models.Summary{}
	var failures []*models.ReadError

	w := bufio.NewWriter(d.out)
	d.logger.LogDebug(fmt.Sprintf("Scanning %s for *%s files (on read error: %s)", d.root, d.suffix, d.policy))

	walkErr := fileutil.WalkSuffix(d.root, d.suffix, func(relPath string) error {
		summary.Matched++

		if err := writeHeader(w, relPath); err != nil {
			return err
		}

		rec, err := ReadRecord(d.root, relPath, d.lockReads)
		if err != nil {
			var readErr *models.ReadError
			if d.policy != PolicyContinue || !errors.As(err, &readErr) {
				return err
			}

			summary.Failed++
			failures = append(failures, readErr)
			d.logger.LogWarn(fmt.Sprintf("Skipping %s: %v", relPath, readErr))
			return writeBody(w, diagnostic(readErr))
		}

		if err := writeBody(w, rec.Content); err != nil {
			return err
		}
		summary.Dumped++
		d.logger.LogDebug(fmt.Sprintf("Dumped %s (%d bytes)", relPath, len(rec.Content)))
		return nil
	})

	// Flush whatever was produced before a failure so partial output survives.
	if err := w.Flush(); err != nil && walkErr == nil {
		walkErr = fmt.Errorf("failed to flush output: %w", err)
	}

	summary.Duration = time.Since(start)

	if walkErr != nil {
		return summary, walkErr
	}

	d.logger.LogSummary(summary)

	if len(failures) > 0 {
		return summary, &models.DumpError{Failures: failures, Matched: summary.Matched}
	}
	return summary, nil
}
