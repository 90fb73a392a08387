package mainlocator

import (
	"fmt"

	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
)

type LocateErrorCause string

const (
	ErrCauseEmptyInput LocateErrorCause = "empty input"
)

type LocateError struct {
	Message string
	Cause   LocateErrorCause
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("main locator error: %s: %s", e.Cause, e.Message)
}

func (e *LocateError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*LocateError)(nil)

// mapLocateErrorToMetadataCause maps locator-local error semantics to
// the canonical metadata.ErrorCause table. Observational only.
func mapLocateErrorToMetadataCause(cause LocateErrorCause) metadata.ErrorCause {
	switch cause {
	case ErrCauseEmptyInput:
		return metadata.CauseEmptyInput
	default:
		return metadata.CauseUnknown
	}
}
