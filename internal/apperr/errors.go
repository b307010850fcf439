package apperr

import "fmt"

// ValidationError reports an invalid argument or configuration value.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// DataConsistencyError is fatal: the input violates a structural invariant
// such as identifier uniqueness and the run must stop.
type DataConsistencyError struct {
	Message string
	ID      string
	Line    int
}

func (e *DataConsistencyError) Error() string {
	msg := "data inconsistency: " + e.Message
	if e.ID != "" {
		msg += fmt.Sprintf(" (id %q)", e.ID)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg
}

func NewDataConsistency(msg, id string, line int) *DataConsistencyError {
	return &DataConsistencyError{Message: msg, ID: id, Line: line}
}

// MalformedRecordError describes a single input record that is skipped.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
}

func NewMalformedRecord(line int, reason string) *MalformedRecordError {
	return &MalformedRecordError{Line: line, Reason: reason}
}
