// Package errors defines the coded errors shared by the parser, pipeline,
// CLI and HTTP service.
//
// Every error a caller may need to react to carries a [Code]. The CLI maps
// codes to exit statuses and the server maps them to HTTP statuses, so the
// message text is free to change. Markup syntax errors additionally wrap a
// [SyntaxError] holding the byte offset of the offending tag:
//
//	nodes, err := parse.Parse(src)
//	if errors.IsSyntax(err) {
//	    off, _ := errors.Offset(err)
//	    fmt.Printf("bad markup at byte %d: %s\n", off, errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPlayers  Code = "INVALID_PLAYERS"
	ErrCodeInvalidTemplate Code = "INVALID_TEMPLATE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Markup syntax. See IsSyntax.
	ErrCodeInvalidMarkup   Code = "INVALID_MARKUP"
	ErrCodeUnknownTag      Code = "UNKNOWN_TAG"
	ErrCodeUnclosedTag     Code = "UNCLOSED_TAG"
	ErrCodeUnexpectedClose Code = "UNEXPECTED_CLOSE"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeCache        Code = "CACHE_ERROR"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message and cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message of the outermost *Error without its code
// and cause, or err.Error() for uncoded errors.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsSyntax reports whether err is a markup syntax error.
func IsSyntax(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidMarkup, ErrCodeUnknownTag, ErrCodeUnclosedTag,
		ErrCodeUnexpectedClose, ErrCodeInvalidArgument:
		return true
	}
	return false
}

// SyntaxError is the position of a markup problem. Tag is the tag as
// written, when there is one.
type SyntaxError struct {
	Offset int
	Tag    string
}

func (e *SyntaxError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("at offset %d", e.Offset)
	}
	return fmt.Sprintf("at offset %d near %q", e.Offset, e.Tag)
}

// Offset returns the byte offset of the first SyntaxError in err's chain.
func Offset(err error) (int, bool) {
	var e *SyntaxError
	if errors.As(err, &e) {
		return e.Offset, true
	}
	return 0, false
}
