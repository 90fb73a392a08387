package metadata

import (
	"log/slog"
	"sync"
	"time"
)

/*
Metadata Collected
- Which operation ran (clean / main / siblings / children)
- The classified cause of a degenerate-input path
- Structural facts useful for debugging a winning candidate
  (pattern length, item count)

Logging Goals
- Debuggable sibling-detection decisions
- Post-run auditability of why an operation fell back to empty output
- Failure diagnostics without ever feeding control flow

Structured logging is preferred.

Allowed:
- Primitive values
- Timestamps
- Identifiers (package name, operation name)
- Hashes
*/

// MetadataSink receives classified observability events. Pipeline
// packages depend on this interface, never on a concrete Recorder,
// so tests can substitute a double that captures records for
// assertions (see the mockMetadataSink pattern used throughout this
// engine's _test.go files).
type MetadataSink interface {
	RecordError(observedAt time.Time, packageName, operation string, cause ErrorCause, details string, attrs []Attribute)
}

// Recorder is the default MetadataSink: it keeps an in-memory log of
// every record (for callers that want to inspect what happened) and
// mirrors each one to log/slog as a structured debug line.
type Recorder struct {
	mu      sync.Mutex
	logger  *slog.Logger
	records []ErrorRecord
}

// NewRecorder returns a Recorder. A nil logger defaults to
// slog.Default().
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger}
}

func (r *Recorder) RecordError(observedAt time.Time, packageName, operation string, cause ErrorCause, details string, attrs []Attribute) {
	record := ErrorRecord{
		PackageName: packageName,
		Operation:   operation,
		Cause:       cause,
		Details:     details,
		ObservedAt:  observedAt,
		Attrs:       attrs,
	}

	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()

	args := make([]any, 0, 4+2*len(attrs))
	args = append(args, "package", packageName, "operation", operation, "cause", cause, "details", details)
	for _, a := range attrs {
		args = append(args, string(a.Key), a.Value)
	}
	r.logger.Debug("htmlshape: degenerate input path", args...)
}

// Records returns a copy of every record observed so far.
func (r *Recorder) Records() []ErrorRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ErrorRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Compile-time interface check.
var _ MetadataSink = (*Recorder)(nil)
