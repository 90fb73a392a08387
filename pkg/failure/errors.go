// Package failure defines the classified-error contract shared across
// the engine's internal packages. A ClassifiedError carries a Severity
// so a caller that wants to distinguish "fatal, give up" from
// "recoverable, fall back" conditions can do so without string
// matching — but no package in this engine uses it to drive retries:
// there is nothing to retry (§5: operations run to completion, no
// timeout or cancellation semantics).
package failure

type Severity int

const (
	SeverityFatal Severity = iota
	SeverityRecoverable
)

type ClassifiedError interface {
	error
	Severity() Severity
}
