// Package errors provides standardized error handling for the assessment engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeBundleInvalid      ErrorCode = "BUNDLE_INVALID"
	ErrCodeBundleParseFailed  ErrorCode = "BUNDLE_PARSE_FAILED"
	ErrCodeBankCorrupt        ErrorCode = "QUESTION_BANK_CORRUPT"
	ErrCodeCatalogLoadFailed  ErrorCode = "CAREER_CATALOG_LOAD_FAILED"
	ErrCodeCatalogEmpty       ErrorCode = "CAREER_CATALOG_EMPTY"
	ErrCodeResultStoreFailed  ErrorCode = "RESULT_STORE_FAILED"
	ErrCodeResultIndexFailed  ErrorCode = "RESULT_INDEX_FAILED"
	ErrCodeResultNotFound     ErrorCode = "RESULT_NOT_FOUND"
	ErrCodeNotificationFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeElasticsearchConnectionFailed ErrorCode = "ELASTICSEARCH_CONNECTION_FAILED"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewBundleInvalidError creates a non-retryable input validation error.
func NewBundleInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBundleInvalid,
		Message:   "Assessment bundle failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBundleParseError creates a non-retryable parse error.
func NewBundleParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBundleParseFailed,
		Message:   "Assessment bundle is not valid JSON",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBankCorruptError reports a broken static question table. This is fatal
// at process startup, before any session is scored.
func NewBankCorruptError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBankCorrupt,
		Message:   "Static question bank failed integrity check",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a retryable catalog fetch error.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load career catalog",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResultStoreFailedError creates a retryable persistence error.
func NewResultStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultStoreFailed,
		Message:   "Failed to persist assessment result",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResultIndexFailedError creates a retryable search indexing error.
func NewResultIndexFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultIndexFailed,
		Message:   "Failed to index assessment result",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResultNotFoundError creates a non-retryable lookup error.
func NewResultNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultNotFound,
		Message:   "No assessment result for session",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationFailedError creates a retryable notification error.
func NewNotificationFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationFailed,
		Message:   "Failed to send completion notification",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}

// CodeOf extracts the ErrorCode from err, or empty when err is not standard.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ""
}
