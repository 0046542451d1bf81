package apperr

import "fmt"

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

// ConfigNotFoundError is returned when no configuration record exists for a course code.
type ConfigNotFoundError struct {
	Course string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("no configuration found for course %q", e.Course)
}

func NewConfigNotFound(course string) *ConfigNotFoundError {
	return &ConfigNotFoundError{Course: course}
}

// ConfigMalformedError is returned when a course configuration cannot be parsed into
// assessments and CLO weight rows.
type ConfigMalformedError struct {
	Course string
	Reason string
	Err    error
}

func (e *ConfigMalformedError) Error() string {
	msg := fmt.Sprintf("malformed configuration for course %q: %s", e.Course, e.Reason)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigMalformedError) Unwrap() error {
	return e.Err
}

func NewConfigMalformed(course, reason string) *ConfigMalformedError {
	return &ConfigMalformedError{Course: course, Reason: reason}
}

func NewConfigMalformedWrap(course, reason string, err error) *ConfigMalformedError {
	return &ConfigMalformedError{Course: course, Reason: reason, Err: err}
}

// InsufficientColumnsError is returned when a grades table is narrower than the
// number of assessments it must be aligned to.
type InsufficientColumnsError struct {
	Expected int
	Got      int
}

func (e *InsufficientColumnsError) Error() string {
	return fmt.Sprintf("grades table has %d columns, %d assessment columns expected", e.Got, e.Expected)
}

// EmptyAssessmentColumnError is returned when an assessment column has no scores at all.
type EmptyAssessmentColumnError struct {
	Column string
}

func (e *EmptyAssessmentColumnError) Error() string {
	return fmt.Sprintf("assessment column %q has no scores", e.Column)
}

// InvalidInputError covers grades input that cannot be decoded or used.
type InvalidInputError struct {
	Message string
	Err     error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(msg string) *InvalidInputError {
	return &InvalidInputError{Message: msg}
}

func NewInvalidInputWrap(msg string, err error) *InvalidInputError {
	return &InvalidInputError{Message: msg, Err: err}
}

// UpstreamError marks a failure of a remote collaborator, such as the grades file source.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
