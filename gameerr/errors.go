// Package gameerr holds the error taxonomy of the game core. Only load-time
// failures and broken invariants are errors; gameplay refusals such as a
// spell without enough energy are reported as booleans by their callers.
package gameerr

import (
	"errors"
	"fmt"
)

// Code classifies an Error.
type Code string

const (
	// CodeConfiguration marks missing or malformed layout, config or
	// template data. Fatal at load time.
	CodeConfiguration Code = "configuration"
	// CodeAssetMissing marks a clip the asset collaborator could not resolve.
	CodeAssetMissing Code = "asset_missing"
	// CodeInvariant marks a programming defect detected at runtime.
	CodeInvariant Code = "invariant_violation"
)

// Error is a classified error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code, so errors.Is(err, &Error{Code: c})
// works as a class check.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Configurationf(format string, args ...any) *Error {
	return newf(CodeConfiguration, format, args...)
}

func AssetMissingf(format string, args ...any) *Error {
	return newf(CodeAssetMissing, format, args...)
}

func Invariantf(format string, args ...any) *Error {
	return newf(CodeInvariant, format, args...)
}

// Wrap classifies cause under code. A nil cause yields nil.
func Wrap(code Code, cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	e := newf(code, format, args...)
	e.Cause = cause
	return e
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func IsConfiguration(err error) bool { return hasCode(err, CodeConfiguration) }
func IsAssetMissing(err error) bool  { return hasCode(err, CodeAssetMissing) }
func IsInvariant(err error) bool     { return hasCode(err, CodeInvariant) }

func hasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
