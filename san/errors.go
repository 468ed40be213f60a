package san

import "github.com/lgbarn/sanmove-go/internal/errors"

// Errors returned by the codec. Check them with errors.Is.
var (
	ErrInvalidToken     = errors.ErrInvalidToken
	ErrExhaustedGrammar = errors.ErrExhaustedGrammar
	ErrMissingField     = errors.ErrMissingField
)

type (
	// TokenError reports a sub-token that matched no vocabulary entry.
	TokenError = errors.TokenError

	// GrammarError reports an input that matched no move shape.
	GrammarError = errors.GrammarError

	// FieldError reports a move with a field Compile cannot render.
	FieldError = errors.FieldError
)
