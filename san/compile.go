package san

import "strings"

// Compile renders m as canonical text: the castle token, or piece letter,
// origin, capture marker and destination; then "=" and the promotion
// letter, the check marker and the annotation.
//
// A move that cannot be rendered without losing information yields a
// *FieldError.
func Compile(m Move) (string, error) {
	var sb strings.Builder

	switch k := m.Kind.(type) {
	case Castle:
		token := k.Side.Text()
		if token == "" {
			return "", &FieldError{Field: "castle side"}
		}
		sb.WriteString(token)
	case Normal:
		if !m.Piece.Valid() {
			return "", &FieldError{Field: "piece"}
		}
		if !k.To.IsSquare() {
			return "", &FieldError{Field: "destination", Reason: "needs both file and rank"}
		}
		sb.WriteString(m.Piece.Text())
		sb.WriteString(k.From.String())
		if m.Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(k.To.String())
	default:
		return "", &FieldError{Field: "kind"}
	}

	if m.Promotion != NoPiece {
		letter := m.Promotion.Text()
		if letter == "" {
			return "", &FieldError{Field: "promotion", Reason: "piece has no letter"}
		}
		sb.WriteByte('=')
		sb.WriteString(letter)
	}

	check := m.Check.Text()
	if check == "" && m.Check != NoCheck {
		return "", &FieldError{Field: "check", Reason: "unknown marker"}
	}
	sb.WriteString(check)

	ann := m.Annotation.Text()
	if ann == "" && m.Annotation != NoAnnotation {
		return "", &FieldError{Field: "annotation", Reason: "unknown annotation"}
	}
	sb.WriteString(ann)

	return sb.String(), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(m Move) string {
	s, err := Compile(m)
	if err != nil {
		panic(err)
	}
	return s
}
