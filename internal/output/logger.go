// Package output provides structured, verbosity-controlled console output
// for the flowcore CLI: a logger, TTY detection, and the startup banner.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// VerbosityLevel controls how much a Logger writes.
type VerbosityLevel int

const (
	// VerbosityDefault prints only warnings and errors.
	VerbosityDefault VerbosityLevel = iota
	// VerbosityVerbose adds phase announcements and result counts.
	VerbosityVerbose
	// VerbosityDebug adds a timing summary across every phase that ran.
	VerbosityDebug
)

// Phase names a stage of flowcore's fixture-to-result pipeline. The CLI
// times each phase it actually runs and, in debug mode, prints them back in
// the order they executed.
type Phase string

const (
	PhaseLoadFixture Phase = "load"
	PhaseBuildGraph  Phase = "build"
	PhaseDominators  Phase = "dominators"
	PhaseLint        Phase = "lint"
)

// timing records one phase's elapsed time against the subject it ran
// against (typically a fixture path), in the order it was recorded.
type timing struct {
	phase   Phase
	subject string
	elapsed time.Duration
}

// Logger is a per-invocation console writer for one flowcore CLI command. It
// gates phase/result messages on verbosity, accumulates phase timings in
// the order they run, and optionally drives a progress bar over a batch of
// fixtures.
type Logger struct {
	verbosity VerbosityLevel
	writer    io.Writer
	started   time.Time
	timings   []timing
	isTTY     bool
	bar       *progressbar.ProgressBar
	showBar   bool
}

// NewLogger creates a logger writing to stderr, keeping stdout clean for
// command results (DOT output, dominator listings, lint reports).
func NewLogger(verbosity VerbosityLevel) *Logger {
	return NewLoggerWithWriter(verbosity, os.Stderr)
}

// NewLoggerWithWriter creates a logger with a custom writer, primarily for
// tests that want to capture output without touching stderr.
func NewLoggerWithWriter(verbosity VerbosityLevel, w io.Writer) *Logger {
	isTTY := IsTTY(w)
	return &Logger{
		verbosity: verbosity,
		writer:    w,
		started:   time.Now(),
		isTTY:     isTTY,
		showBar:   isTTY,
	}
}

// Announce prints a one-line status message — "building example.yaml",
// "4 blocks, 5 edges" — gated on verbose or debug mode.
func (l *Logger) Announce(format string, args ...interface{}) {
	if l.verbosity >= VerbosityVerbose {
		fmt.Fprintf(l.writer, format+"\n", args...)
	}
}

// Debug prints a diagnostic prefixed with elapsed time since the logger was
// created, gated on debug mode.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbosity >= VerbosityDebug {
		fmt.Fprintf(l.writer, "[%s] %s\n", formatDuration(time.Since(l.started)), fmt.Sprintf(format, args...))
	}
}

// Warning always prints, prefixed "Warning:".
func (l *Logger) Warning(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// Error always prints, prefixed "Error:".
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.writer, "Error: %s\n", fmt.Sprintf(format, args...))
}

// Time runs fn, records its elapsed time against phase/subject (subject is
// typically the fixture path being processed), and returns fn's error.
func (l *Logger) Time(phase Phase, subject string, fn func() error) error {
	start := time.Now()
	err := fn()
	l.timings = append(l.timings, timing{phase: phase, subject: subject, elapsed: time.Since(start)})
	return err
}

// TimingRecord is one phase's elapsed time, as returned by Logger.Timings.
type TimingRecord struct {
	Phase    Phase
	Subject  string
	Duration time.Duration
}

// Timings returns every recorded phase timing in the order it was run.
func (l *Logger) Timings() []TimingRecord {
	out := make([]TimingRecord, len(l.timings))
	for i, t := range l.timings {
		out[i] = TimingRecord{Phase: t.phase, Subject: t.subject, Duration: t.elapsed}
	}
	return out
}

// PrintTimingSummary prints every recorded phase timing, in run order,
// debug mode only.
func (l *Logger) PrintTimingSummary() {
	if l.verbosity < VerbosityDebug || len(l.timings) == 0 {
		return
	}
	fmt.Fprintln(l.writer, "\nPhase timings:")
	for _, t := range l.timings {
		if t.subject != "" {
			fmt.Fprintf(l.writer, "  %s (%s): %s\n", t.phase, t.subject, t.elapsed.Round(time.Millisecond))
		} else {
			fmt.Fprintf(l.writer, "  %s: %s\n", t.phase, t.elapsed.Round(time.Millisecond))
		}
	}
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

// Verbosity returns the logger's configured level.
func (l *Logger) Verbosity() VerbosityLevel {
	return l.verbosity
}

// IsVerbose reports whether verbose or debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbosity >= VerbosityVerbose
}

// IsDebug reports whether debug output is enabled.
func (l *Logger) IsDebug() bool {
	return l.verbosity >= VerbosityDebug
}

// IsTTY reports whether the logger's writer is a terminal.
func (l *Logger) IsTTY() bool {
	return l.isTTY
}

// Writer returns the logger's underlying writer, for callers (like the
// startup banner) that need to write alongside it.
func (l *Logger) Writer() io.Writer {
	return l.writer
}

// BeginBatch starts a progress bar tracking total fixtures being built.
// Outside a TTY it just announces the label once and every Advance/EndBatch
// call is a no-op.
func (l *Logger) BeginBatch(label string, total int) {
	if !l.showBar || !l.isTTY {
		l.Announce("%s (%d fixtures)...", label, total)
		return
	}
	l.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(l.writer),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprintf(l.writer, "\n") }),
	)
}

// AdvanceBatch advances the active batch progress bar by one fixture.
func (l *Logger) AdvanceBatch() {
	if l.bar == nil {
		return
	}
	_ = l.bar.Add(1)
}

// EndBatch completes and clears the active batch progress bar.
func (l *Logger) EndBatch() {
	if l.bar == nil {
		return
	}
	_ = l.bar.Finish()
	l.bar = nil
}

// BatchEnabled reports whether BeginBatch will actually render a bar rather
// than fall back to a plain announcement.
func (l *Logger) BatchEnabled() bool {
	return l.showBar && l.isTTY
}
