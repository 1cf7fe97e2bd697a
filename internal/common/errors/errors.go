// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeParseError ErrorCode = "PARSE_ERROR"

	ErrCodePostingNotFound   ErrorCode = "POSTING_NOT_FOUND"
	ErrCodePostingNotActive  ErrorCode = "POSTING_NOT_ACTIVE"
	ErrCodeCandidateNotFound ErrorCode = "CANDIDATE_NOT_FOUND"

	ErrCodeCandidateQueryFailed ErrorCode = "CANDIDATE_QUERY_FAILED"
	ErrCodePostingQueryFailed   ErrorCode = "POSTING_QUERY_FAILED"
	ErrCodeSearchQueryFailed    ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout        ErrorCode = "SEARCH_TIMEOUT"

	ErrCodeEligibilityCheckFailed ErrorCode = "ELIGIBILITY_CHECK_FAILED"
	ErrCodeMatchScoreFailed       ErrorCode = "MATCH_SCORE_FAILED"

	ErrCodeNotificationSendFailed  ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeNotificationMergeFailed ErrorCode = "NOTIFICATION_MERGE_FAILED"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// BPMNError represents an error thrown to the workflow engine.
type BPMNError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable"`
	Retries   int    `json:"retries"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ConvertToBPMNError maps a StandardError onto the workflow error contract.
func ConvertToBPMNError(err *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   RetryCount(err.Code),
	}
}

// RetryCount returns how many retries a given error code warrants. Only
// transient infrastructure failures are retried.
func RetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCandidateQueryFailed, ErrCodePostingQueryFailed,
		ErrCodeSearchQueryFailed, ErrCodeNotificationSendFailed,
		ErrCodeNotificationMergeFailed:
		return 3
	case ErrCodeSearchTimeout:
		return 1
	default:
		return 0
	}
}

// New wraps an execution error under a workflow error code; retryability
// follows RetryCount.
func New(code ErrorCode, err error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   err.Error(),
		Retryable: RetryCount(code) > 0,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError flags malformed job variables; never retried.
func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   fmt.Sprintf("parse input: %v", err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError creates a non-retryable input error.
func NewValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
