// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryCount(t *testing.T) {
	assert.Equal(t, 3, RetryCount(ErrCodeCandidateQueryFailed))
	assert.Equal(t, 3, RetryCount(ErrCodeNotificationMergeFailed))
	assert.Equal(t, 1, RetryCount(ErrCodeSearchTimeout))
	assert.Equal(t, 0, RetryCount(ErrCodePostingNotActive))
	assert.Equal(t, 0, RetryCount(ErrCodeValidationFailed))
}

func TestNew(t *testing.T) {
	stdErr := New(ErrCodeCandidateQueryFailed, fmt.Errorf("connection refused"))
	assert.Equal(t, ErrCodeCandidateQueryFailed, stdErr.Code)
	assert.Equal(t, "connection refused", stdErr.Message)
	assert.True(t, stdErr.Retryable)

	terminal := New(ErrCodePostingNotActive, fmt.Errorf("posting is paused"))
	assert.False(t, terminal.Retryable)
}

func TestConvertToBPMNError(t *testing.T) {
	bpmnErr := ConvertToBPMNError(New(ErrCodeCandidateQueryFailed, fmt.Errorf("connection refused")))
	assert.Equal(t, "CANDIDATE_QUERY_FAILED", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)

	bpmnErr = ConvertToBPMNError(NewParseError(fmt.Errorf("unexpected end of JSON input")))
	assert.Equal(t, "PARSE_ERROR", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestNewValidationError(t *testing.T) {
	stdErr := NewValidationError("postingId is required")
	assert.Equal(t, ErrCodeValidationFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "postingId")
	assert.False(t, stdErr.Retryable)
}
