package san

// MoveKind is either Normal or Castle.
type MoveKind interface {
	moveKind()
}

// Normal is a move from an origin to a destination. The origin may be
// fully or partially Unspecified; the destination is always a square.
type Normal struct {
	From Position
	To   Position
}

// Castle is a castling move. It carries no squares.
type Castle struct {
	Side CastleType
}

func (Normal) moveKind() {}
func (Castle) moveKind() {}

// Move represents a single move as written in SAN or LAN.
type Move struct {
	// Normal or Castle.
	Kind MoveKind

	// The moving piece. King for castling.
	Piece Piece

	// The piece promoted to (NoPiece if not a promotion).
	Promotion Piece

	// Move-quality suffix (NoAnnotation if absent).
	Annotation Annotation

	// Check or mate marker (NoCheck if absent).
	Check CheckType

	// Whether the text contained a capture marker.
	Capture bool
}

// NewMove creates a move with no promotion, annotation, check or capture.
func NewMove(piece Piece, kind MoveKind) Move {
	return Move{Kind: kind, Piece: piece}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	_, ok := m.Kind.(Castle)
	return ok
}

// IsPromotion returns true if this move names a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// Origin returns the origin of a normal move, or Unspecified.
func (m Move) Origin() Position {
	if n, ok := m.Kind.(Normal); ok {
		return n.From
	}
	return Unspecified
}

// Destination returns the destination of a normal move, or Unspecified.
func (m Move) Destination() Position {
	if n, ok := m.Kind.(Normal); ok {
		return n.To
	}
	return Unspecified
}

// String returns the compiled text of m, or "" if m cannot be compiled.
func (m Move) String() string {
	s, err := Compile(m)
	if err != nil {
		return ""
	}
	return s
}
