// Package san parses and compiles chess moves written in Standard Algebraic
// Notation (SAN) and Long Algebraic Notation (LAN).
//
// The package is a notation-layer codec only: it never consults a board, so
// it neither checks legality nor resolves which piece a move refers to.
package san

import "github.com/lgbarn/sanmove-go/internal/errors"

// Piece represents the piece a move refers to.
type Piece int

const (
	NoPiece Piece = iota // Not set
	Pawn
	Bishop
	King
	Knight
	Queen
	Rook
)

var pieceNames = [...]string{"NoPiece", "Pawn", "Bishop", "King", "Knight", "Queen", "Rook"}

// pieceLetters indexes the SAN letter of each piece. Pawns have none.
var pieceLetters = [...]string{"", "", "B", "K", "N", "Q", "R"}

// String returns the name of a piece.
func (p Piece) String() string {
	if p >= 0 && int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "Unknown"
}

// Text returns the SAN letter of a piece. Pawn and unknown values yield "".
func (p Piece) Text() string {
	if p >= 0 && int(p) < len(pieceLetters) {
		return pieceLetters[p]
	}
	return ""
}

// Valid reports whether p is one of the six chess pieces.
func (p Piece) Valid() bool {
	return p >= Pawn && p <= Rook
}

// ParsePiece decodes a SAN piece letter. The empty string is Pawn.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "":
		return Pawn, nil
	case "B":
		return Bishop, nil
	case "K":
		return King, nil
	case "N":
		return Knight, nil
	case "Q":
		return Queen, nil
	case "R":
		return Rook, nil
	}
	return NoPiece, &errors.TokenError{Vocabulary: "piece", Token: s}
}

// CastleType identifies the side a king castles towards.
type CastleType int

const (
	Kingside CastleType = iota + 1
	Queenside
)

// String returns the name of a castle side.
func (c CastleType) String() string {
	switch c {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	}
	return "Unknown"
}

// Text returns the castling token, "O-O" or "O-O-O".
func (c CastleType) Text() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	}
	return ""
}

// ParseCastleType decodes a castling token.
func ParseCastleType(s string) (CastleType, error) {
	switch s {
	case "O-O":
		return Kingside, nil
	case "O-O-O":
		return Queenside, nil
	}
	return 0, &errors.TokenError{Vocabulary: "castling move", Token: s}
}

// Annotation is a move-quality suffix.
type Annotation int

const (
	NoAnnotation Annotation = iota
	Blunder                 // ??
	Mistake                 // ?
	Interesting             // ?!
	Good                    // !
	Brilliant               // !!
)

var annotationNames = [...]string{"NoAnnotation", "Blunder", "Mistake", "Interesting", "Good", "Brilliant"}

var annotationText = [...]string{"", "??", "?", "?!", "!", "!!"}

// String returns the name of an annotation.
func (a Annotation) String() string {
	if a >= 0 && int(a) < len(annotationNames) {
		return annotationNames[a]
	}
	return "Unknown"
}

// Text returns the annotation suffix. NoAnnotation yields "".
func (a Annotation) Text() string {
	if a >= 0 && int(a) < len(annotationText) {
		return annotationText[a]
	}
	return ""
}

// ParseAnnotation decodes an annotation suffix.
func ParseAnnotation(s string) (Annotation, error) {
	switch s {
	case "??":
		return Blunder, nil
	case "?":
		return Mistake, nil
	case "?!":
		return Interesting, nil
	case "!":
		return Good, nil
	case "!!":
		return Brilliant, nil
	}
	return NoAnnotation, &errors.TokenError{Vocabulary: "annotation", Token: s}
}

// CheckType marks a move that gives check or mate.
type CheckType int

const (
	NoCheck CheckType = iota
	Check
	Mate
)

// String returns the name of a check type.
func (c CheckType) String() string {
	switch c {
	case NoCheck:
		return "NoCheck"
	case Check:
		return "Check"
	case Mate:
		return "Mate"
	}
	return "Unknown"
}

// Text returns "+" for Check, "#" for Mate and "" otherwise.
func (c CheckType) Text() string {
	switch c {
	case Check:
		return "+"
	case Mate:
		return "#"
	}
	return ""
}

// ParseCheckType decodes a check or mate marker.
func ParseCheckType(s string) (CheckType, error) {
	switch s {
	case "+":
		return Check, nil
	case "#":
		return Mate, nil
	}
	return NoCheck, &errors.TokenError{Vocabulary: "check marker", Token: s}
}
