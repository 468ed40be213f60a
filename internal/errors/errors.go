// Package errors provides sentinel errors and error types for the SAN codec.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidToken indicates a sub-token did not decode against its vocabulary.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExhaustedGrammar indicates no move shape matched the whole input.
	ErrExhaustedGrammar = errors.New("no move shape matched")

	// ErrMissingField indicates a move value lacks a field needed to compile it.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnterminated indicates a movetext comment or variation was never closed.
	ErrUnterminated = errors.New("unterminated movetext")

	// ErrUnbalanced indicates a closing brace or parenthesis with no opener.
	ErrUnbalanced = errors.New("unbalanced movetext")
)

// TokenError reports a vocabulary lookup failure. Vocabulary names the
// table that was consulted ("piece", "annotation", ...) and Token is the
// offending substring.
type TokenError struct {
	Vocabulary string
	Token      string
}

// Error returns a message naming the vocabulary and the token.
func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Vocabulary, e.Token)
}

// Unwrap returns ErrInvalidToken.
func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// GrammarError reports that no shape matcher accepted Input.
type GrammarError struct {
	Input string
}

// Error returns a message containing the full original input.
func (e *GrammarError) Error() string {
	return fmt.Sprintf("could not parse move %q", e.Input)
}

// Unwrap returns ErrExhaustedGrammar.
func (e *GrammarError) Unwrap() error {
	return ErrExhaustedGrammar
}

// FieldError reports a move that cannot be compiled because Field is
// unset or holds a value with no textual form.
type FieldError struct {
	Field  string
	Reason string
}

// Error returns a message naming the field.
func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("move %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("move %s is not set", e.Field)
}

// Unwrap returns ErrMissingField.
func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// ParseError represents a parsing error with file location context.
// It's used when a move token read from movetext fails to decode.
type ParseError struct {
	Err    error  // The underlying error
	File   string // Source file name
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Got    string // The token that was found
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add file location
	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "<input>"
		}
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("token %q", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
