package children

import (
	"fmt"

	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/failure"
)

type FilterErrorCause string

const (
	ErrCauseEmptyInput      FilterErrorCause = "empty input"
	ErrCauseNoSiblingsFound FilterErrorCause = "no siblings found"
	ErrCauseNoneQualified   FilterErrorCause = "no item contains an outbound link"
)

type FilterError struct {
	Message string
	Cause   FilterErrorCause
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("children filter error: %s: %s", e.Cause, e.Message)
}

func (e *FilterError) Severity() failure.Severity {
	return failure.SeverityRecoverable
}

var _ failure.ClassifiedError = (*FilterError)(nil)

func mapFilterErrorToMetadataCause(cause FilterErrorCause) metadata.ErrorCause {
	switch cause {
	case ErrCauseEmptyInput:
		return metadata.CauseEmptyInput
	case ErrCauseNoSiblingsFound, ErrCauseNoneQualified:
		return metadata.CauseNoSiblingsFound
	default:
		return metadata.CauseUnknown
	}
}
