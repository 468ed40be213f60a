package san

// Parse decodes a single move token such as "e4", "Nbd7", "exd8=Q+!" or
// "O-O-O#". Move numbers and comments must already be stripped.
//
// On failure the returned Move is the zero value and the error is a
// *GrammarError (no shape matched) or a *TokenError.
func Parse(text string) (Move, error) {
	for i := range shapes {
		m, ok, err := shapes[i].match(text)
		if err != nil {
			return Move{}, err
		}
		if ok {
			return m, nil
		}
	}
	return Move{}, &GrammarError{Input: text}
}

// MustParse is like Parse but panics on error. It is intended for move
// literals in tests and initializers.
func MustParse(text string) Move {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return m
}

// ShapeOf returns the name of the first shape matching text, or "" if
// none does.
func ShapeOf(text string) string {
	for i := range shapes {
		if shapes[i].pattern.MatchString(text) {
			return shapes[i].name
		}
	}
	return ""
}

// Shapes returns the shape names in the order Parse tries them.
func Shapes() []string {
	names := make([]string, len(shapes))
	for i := range shapes {
		names[i] = shapes[i].name
	}
	return names
}
