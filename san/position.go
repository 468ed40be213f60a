package san

import "github.com/lgbarn/sanmove-go/internal/errors"

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Position is a board coordinate whose file and rank are each optional.
//
// Files 0..7 are a..h. Ranks are stored top-down: 0 is rank "8" and 7 is
// rank "1". Both axes absent means the notation left the square out; one
// axis alone is a disambiguation hint.
//
// The zero value is Unspecified. Compare positions with == or Equal.
type Position struct {
	// Coordinates are stored offset by one so that 0 means absent.
	file int8
	rank int8
}

// Unspecified is the position with neither file nor rank.
var Unspecified = Position{}

// Square returns the position with both axes present. An axis outside
// 0..7 is left absent.
func Square(file, rank int) Position {
	return Position{file: axis(file), rank: axis(rank)}
}

// FileOnly returns a position that names only a file.
func FileOnly(file int) Position {
	return Position{file: axis(file)}
}

// RankOnly returns a position that names only a rank.
func RankOnly(rank int) Position {
	return Position{rank: axis(rank)}
}

func axis(c int) int8 {
	if c < 0 || c >= BoardSize {
		return 0
	}
	return int8(c + 1)
}

// File returns the file coordinate and whether it is present.
func (p Position) File() (int, bool) {
	return int(p.file) - 1, p.file != 0
}

// Rank returns the rank coordinate and whether it is present.
func (p Position) Rank() (int, bool) {
	return int(p.rank) - 1, p.rank != 0
}

// HasFile reports whether the file is present.
func (p Position) HasFile() bool { return p.file != 0 }

// HasRank reports whether the rank is present.
func (p Position) HasRank() bool { return p.rank != 0 }

// IsSquare reports whether both axes are present.
func (p Position) IsSquare() bool { return p.file != 0 && p.rank != 0 }

// IsUnspecified reports whether neither axis is present.
func (p Position) IsUnspecified() bool { return p.file == 0 && p.rank == 0 }

// Equal reports structural equality.
func (p Position) Equal(o Position) bool {
	return p == o
}

// String renders the present axes, e.g. "e4", "e", "4" or "".
func (p Position) String() string {
	var buf [2]byte
	n := 0
	if p.file != 0 {
		buf[n] = fileChar(int(p.file) - 1)
		n++
	}
	if p.rank != 0 {
		buf[n] = rankChar(int(p.rank) - 1)
		n++
	}
	return string(buf[:n])
}

// ParsePosition decodes "", a file letter, a rank digit, or a square.
func ParsePosition(s string) (Position, error) {
	var p Position
	i := 0
	if i < len(s) && isFile(s[i]) {
		p.file = int8(decodeFile(s[i]) + 1)
		i++
	}
	if i < len(s) && isRank(s[i]) {
		p.rank = int8(decodeRank(s[i]) + 1)
		i++
	}
	if i != len(s) {
		return Unspecified, &errors.TokenError{Vocabulary: "square", Token: s}
	}
	return p, nil
}

func isFile(c byte) bool { return c >= 'a' && c <= 'h' }

func isRank(c byte) bool { return c >= '1' && c <= '8' }

// decodeFile maps 'a'..'h' to 0..7. The caller guarantees the range.
func decodeFile(c byte) int { return int(c - 'a') }

// decodeRank maps '1'..'8' to 7..0. The caller guarantees the range.
func decodeRank(c byte) int { return 7 - int(c-'1') }

func fileChar(file int) byte { return byte('a' + file) }

func rankChar(rank int) byte { return byte('8' - rank) }
