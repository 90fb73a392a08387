package cleaner

import (
	"fmt"

	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
)

type CleaningErrorCause string

const (
	ErrCauseUnparseableHTML CleaningErrorCause = "unparseable html"
	ErrCauseEmptyInput      CleaningErrorCause = "empty input"
)

type CleaningError struct {
	Message string
	Cause   CleaningErrorCause
}

func (e *CleaningError) Error() string {
	return fmt.Sprintf("cleaning error: %s: %s", e.Cause, e.Message)
}

func (e *CleaningError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*CleaningError)(nil)

// mapCleaningErrorToMetadataCause maps cleaner-local error semantics to
// the canonical metadata.ErrorCause table. Observational only, never
// used to derive control flow.
func mapCleaningErrorToMetadataCause(cause CleaningErrorCause) metadata.ErrorCause {
	switch cause {
	case ErrCauseEmptyInput:
		return metadata.CauseEmptyInput
	case ErrCauseUnparseableHTML:
		return metadata.CauseUnparseable
	default:
		return metadata.CauseUnknown
	}
}
