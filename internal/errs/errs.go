package errs

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Code identifies a failure category of the pipeline.
type Code string

const (
	CodeInvalidURL        Code = "INVALID_URL"
	CodeNoNetwork         Code = "NO_NETWORK"
	CodeMissingCredential Code = "MISSING_CREDENTIAL"
	CodeDownloadFailed    Code = "DOWNLOAD_FAILED"
	CodeCompression       Code = "COMPRESSION_FAILED"
	CodeVideoTooLarge     Code = "VIDEO_TOO_LARGE"
	CodeProcessingTimeout Code = "PROCESSING_TIMEOUT"
	CodeProcessingFailed  Code = "PROCESSING_FAILED"
	CodeRateLimited       Code = "RATE_LIMITED"
	CodeAuth              Code = "AUTH_FAILED"
	CodeRemote            Code = "REMOTE_ERROR"
	CodeInternal          Code = "INTERNAL_ERROR"
)

// AppError carries a failure code alongside the underlying cause.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError without a cause.
func New(code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// CodeOf extracts the failure code from err, or CodeInternal if err carries none.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// Fatal reports whether err should abort an entire batch run.
func Fatal(err error) bool {
	switch CodeOf(err) {
	case CodeAuth, CodeNoNetwork, CodeMissingCredential:
		return true
	}
	return false
}

// Process exit codes, stable across invocations for scripting.
const (
	ExitInvalidInput      = 1
	ExitDownloadFailed    = 2
	ExitMissingCredential = 3
	ExitRateLimited       = 4
	ExitRemoteAPI         = 5
	ExitCompression       = 6
	ExitNoNetwork         = 7
)

// ExitCode maps a failure code to its process exit code.
func ExitCode(err error) int {
	switch CodeOf(err) {
	case CodeInvalidURL:
		return ExitInvalidInput
	case CodeDownloadFailed:
		return ExitDownloadFailed
	case CodeMissingCredential:
		return ExitMissingCredential
	case CodeRateLimited:
		return ExitRateLimited
	case CodeAuth, CodeRemote, CodeProcessingFailed, CodeProcessingTimeout:
		return ExitRemoteAPI
	case CodeCompression, CodeVideoTooLarge:
		return ExitCompression
	case CodeNoNetwork:
		return ExitNoNetwork
	}
	return ExitInvalidInput
}

var (
	rateTokens = []string{"rate", "quota", "limit", "429"}
	authTokens = []string{"api", "key", "auth", "401", "403"}
)

// Classify buckets an error from the remote transcription service.
//
// A structured genai.APIError status code is inspected first; otherwise the
// lowercased message is scanned for known tokens. Rate-limit tokens are
// checked before auth tokens, so a message mentioning both classifies as
// rate limited.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return Wrap(err, CodeRateLimited, "remote service rate limited")
		case 401, 403:
			return Wrap(err, CodeAuth, "remote service rejected credentials")
		}
	}

	msg := strings.ToLower(err.Error())
	if containsAny(msg, rateTokens) {
		return Wrap(err, CodeRateLimited, "remote service rate limited")
	}
	if containsAny(msg, authTokens) {
		return Wrap(err, CodeAuth, "remote service rejected credentials")
	}
	return Wrap(err, CodeRemote, "unexpected remote error")
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
