package output

import (
	"github.com/lgbarn/sanmove-go/internal/errors"
	"github.com/lgbarn/sanmove-go/san"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Input      string `json:"input,omitempty"`
	SAN        string `json:"san,omitempty"`
	Kind       string `json:"kind,omitempty"`   // "normal" or "castle"
	Castle     string `json:"castle,omitempty"` // "O-O" or "O-O-O"
	Piece      string `json:"piece,omitempty"`  // SAN letter, "P" for pawns
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Capture    bool   `json:"capture,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      string `json:"check,omitempty"`
	Annotation string `json:"annotation,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JSONOutput holds multiple moves for array output.
type JSONOutput struct {
	Moves []*JSONMove `json:"moves"`
}

const (
	kindNormal = "normal"
	kindCastle = "castle"
)

// MoveToJSON converts a decoded move. input is the text it was parsed
// from and may be empty.
func MoveToJSON(input string, m san.Move) *JSONMove {
	jm := &JSONMove{
		Input:      input,
		Capture:    m.Capture,
		Check:      m.Check.Text(),
		Annotation: m.Annotation.Text(),
	}

	switch k := m.Kind.(type) {
	case san.Castle:
		jm.Kind = kindCastle
		jm.Castle = k.Side.Text()
	case san.Normal:
		jm.Kind = kindNormal
		jm.Piece = pieceLetter(m.Piece)
		jm.From = k.From.String()
		jm.To = k.To.String()
	}

	if m.IsPromotion() {
		jm.Promotion = pieceLetter(m.Promotion)
	}

	if text, err := san.Compile(m); err != nil {
		jm.Error = err.Error()
	} else {
		jm.SAN = text
	}
	return jm
}

// ErrorToJSON records a token that failed to decode.
func ErrorToJSON(input string, err error) *JSONMove {
	return &JSONMove{Input: input, Error: err.Error()}
}

// MoveFromJSON rebuilds a move from its JSON form. Kind is required, and
// normal moves must name their piece ("P" for pawns).
func MoveFromJSON(jm *JSONMove) (san.Move, error) {
	var m san.Move

	switch jm.Kind {
	case kindCastle:
		side, err := san.ParseCastleType(jm.Castle)
		if err != nil {
			return san.Move{}, err
		}
		m = san.NewMove(san.King, san.Castle{Side: side})
	case kindNormal:
		if jm.Piece == "" {
			return san.Move{}, &errors.FieldError{Field: "piece", Reason: `use "P" for pawns`}
		}
		piece, err := parsePieceLetter(jm.Piece)
		if err != nil {
			return san.Move{}, err
		}
		from, err := san.ParsePosition(jm.From)
		if err != nil {
			return san.Move{}, errors.Wrap(err, "from")
		}
		to, err := san.ParsePosition(jm.To)
		if err != nil {
			return san.Move{}, errors.Wrap(err, "to")
		}
		m = san.NewMove(piece, san.Normal{From: from, To: to})
		m.Capture = jm.Capture
	case "":
		return san.Move{}, &errors.FieldError{Field: "kind"}
	default:
		return san.Move{}, &errors.TokenError{Vocabulary: "move kind", Token: jm.Kind}
	}

	if jm.Promotion != "" {
		promo, err := parsePieceLetter(jm.Promotion)
		if err != nil {
			return san.Move{}, errors.Wrap(err, "promotion")
		}
		m.Promotion = promo
	}
	if jm.Check != "" {
		check, err := san.ParseCheckType(jm.Check)
		if err != nil {
			return san.Move{}, err
		}
		m.Check = check
	}
	if jm.Annotation != "" {
		ann, err := san.ParseAnnotation(jm.Annotation)
		if err != nil {
			return san.Move{}, err
		}
		m.Annotation = ann
	}
	return m, nil
}

func pieceLetter(p san.Piece) string {
	if p == san.Pawn {
		return "P"
	}
	return p.Text()
}

func parsePieceLetter(s string) (san.Piece, error) {
	switch s {
	case "P":
		return san.Pawn, nil
	case "":
		return san.NoPiece, &errors.TokenError{Vocabulary: "piece", Token: s}
	}
	return san.ParsePiece(s)
}
