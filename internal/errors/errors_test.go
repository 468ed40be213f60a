package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidToken", ErrInvalidToken, ErrInvalidToken},
		{"ErrExhaustedGrammar", ErrExhaustedGrammar, ErrExhaustedGrammar},
		{"ErrMissingField", ErrMissingField, ErrMissingField},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnterminated", ErrUnterminated, ErrUnterminated},
		{"ErrUnbalanced", ErrUnbalanced, ErrUnbalanced},
		{"TokenError", &TokenError{Vocabulary: "piece", Token: "X"}, ErrInvalidToken},
		{"GrammarError", &GrammarError{Input: "Z9"}, ErrExhaustedGrammar},
		{"FieldError", &FieldError{Field: "piece"}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies the codec error kinds never alias each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(&TokenError{}, ErrExhaustedGrammar) {
		t.Error("TokenError should not match ErrExhaustedGrammar")
	}
	if errors.Is(&GrammarError{}, ErrInvalidToken) {
		t.Error("GrammarError should not match ErrInvalidToken")
	}
	if errors.Is(&FieldError{}, ErrInvalidToken) {
		t.Error("FieldError should not match ErrInvalidToken")
	}
}

func TestTokenError_Error(t *testing.T) {
	err := &TokenError{Vocabulary: "annotation", Token: "?!?"}
	msg := err.Error()
	for _, s := range []string{"annotation", `"?!?"`} {
		if !strings.Contains(msg, s) {
			t.Errorf("TokenError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestGrammarError_Error(t *testing.T) {
	err := &GrammarError{Input: "Qxx4"}
	if !strings.Contains(err.Error(), `"Qxx4"`) {
		t.Errorf("GrammarError.Error() = %q, should contain the input", err.Error())
	}

	empty := &GrammarError{}
	if !strings.Contains(empty.Error(), `""`) {
		t.Errorf("GrammarError.Error() = %q, should quote the empty input", empty.Error())
	}
}

func TestFieldError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FieldError
		want string
	}{
		{"unset", &FieldError{Field: "piece"}, "move piece is not set"},
		{"with reason", &FieldError{Field: "promotion", Reason: "pawn has no letter"}, "move promotion: pawn has no letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("FieldError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFieldError_As verifies that errors.As works with FieldError
func TestFieldError_As(t *testing.T) {
	wrapped := fmt.Errorf("compiling move 3: %w", &FieldError{Field: "destination"})

	var fieldErr *FieldError
	if !errors.As(wrapped, &fieldErr) {
		t.Fatal("errors.As() could not extract FieldError")
	}
	if fieldErr.Field != "destination" {
		t.Errorf("fieldErr.Field = %q, want %q", fieldErr.Field, "destination")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:    &GrammarError{Input: "Nz4"},
		File:   "tournament.pgn",
		Line:   100,
		Column: 15,
		Got:    "Nz4",
	}

	msg := err.Error()

	for _, s := range []string{"tournament.pgn:100:15", `token "Nz4"`, "could not parse"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestParseError_NoFile(t *testing.T) {
	err := &ParseError{Err: ErrExhaustedGrammar, Line: 2, Column: 7}
	if got, want := err.Error(), "<input>:2:7: no move shape matched"; got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}

	bare := &ParseError{}
	if got := bare.Error(); got != "parse error" {
		t.Errorf("ParseError.Error() = %q, want %q", got, "parse error")
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  &TokenError{Vocabulary: "piece", Token: "X"},
		File: "moves.txt",
		Line: 1,
	}

	if !errors.Is(parseErr, ErrInvalidToken) {
		t.Error("errors.Is(parseErr, ErrInvalidToken) = false, want true")
	}

	var tokenErr *TokenError
	if !errors.As(parseErr, &tokenErr) {
		t.Fatal("errors.As() could not extract TokenError")
	}
	if tokenErr.Vocabulary != "piece" {
		t.Errorf("tokenErr.Vocabulary = %q, want %q", tokenErr.Vocabulary, "piece")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrExhaustedGrammar, "reading moves.txt")

	if !errors.Is(wrapped, ErrExhaustedGrammar) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "reading moves.txt") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMissingField, "move %d of %d", 15, 30)

	if !errors.Is(wrapped, ErrMissingField) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}

	if Wrapf(nil, "move %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
