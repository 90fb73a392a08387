package siblings

import (
	"fmt"

	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
)

type DetectionErrorCause string

const (
	ErrCauseEmptyInput      DetectionErrorCause = "empty input"
	ErrCauseNoSiblingsFound DetectionErrorCause = "no siblings found"
)

type DetectionError struct {
	Message string
	Cause   DetectionErrorCause
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("sibling detection error: %s: %s", e.Cause, e.Message)
}

func (e *DetectionError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*DetectionError)(nil)

func mapDetectionErrorToMetadataCause(cause DetectionErrorCause) metadata.ErrorCause {
	switch cause {
	case ErrCauseEmptyInput:
		return metadata.CauseEmptyInput
	case ErrCauseNoSiblingsFound:
		return metadata.CauseNoSiblingsFound
	default:
		return metadata.CauseUnknown
	}
}
