package planning

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the planning package.
var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrNoTasks         = errors.New("no tasks provided")
	ErrNoMembers       = errors.New("no members provided")
	ErrNoValidRecords  = errors.New("no valid records extracted from response")
	ErrGeneratorFailed = errors.New("text generator failed")
)

// FailureKind names the stage that produced an ExtractionFailure.
type FailureKind string

const (
	KindTasks    FailureKind = "tasks"
	KindSchedule FailureKind = "schedule"
)

// ExtractionFailure is returned when a response yielded records but none of
// them survived validation. Records is the number of raw records seen.
type ExtractionFailure struct {
	Kind    FailureKind
	Records int
}

func (e *ExtractionFailure) Error() string {
	return fmt.Sprintf("%s: %d raw records, none valid: %v", e.Kind, e.Records, ErrNoValidRecords)
}

func (e *ExtractionFailure) Unwrap() error {
	return ErrNoValidRecords
}
