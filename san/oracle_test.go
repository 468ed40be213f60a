package san

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/lgbarn/sanmove-go/internal/testutil"
)

// TestAgainstNotnilChess replays a reference game with notnil/chess and,
// at every position, checks that each legal move's SAN as written by that
// library parses to the right destination and compiles back unchanged.
func TestAgainstNotnilChess(t *testing.T) {
	game := chess.NewGame()
	notation := chess.AlgebraicNotation{}
	checked := 0

	for ply, text := range append(testutil.GrecoGameMoves(), "") {
		pos := game.Position()
		for _, mv := range game.ValidMoves() {
			encoded := notation.Encode(pos, mv)

			m, err := Parse(encoded)
			if err != nil {
				t.Fatalf("ply %d: Parse(%q) error: %v", ply, encoded, err)
			}

			want := Square(int(mv.S2().File()), 7-int(mv.S2().Rank()))
			if mv.HasTag(chess.KingSideCastle) || mv.HasTag(chess.QueenSideCastle) {
				testutil.AssertTrue(t, m.IsCastle(), "ply %d: %s should be a castle", ply, encoded)
			} else {
				testutil.AssertEqual(t, m.Destination(), want, "ply %d: destination of %s", ply, encoded)
			}
			testutil.AssertEqual(t, m.Capture, strings.Contains(encoded, "x"), "ply %d: capture flag of %s", ply, encoded)

			compiled, err := Compile(m)
			testutil.AssertNoError(t, err, "ply %d: Compile(%s)", ply, encoded)
			testutil.AssertEqual(t, compiled, encoded, "ply %d", ply)
			checked++
		}

		if text == "" {
			break
		}
		if err := game.MoveStr(text); err != nil {
			t.Fatalf("ply %d: MoveStr(%q) error: %v", ply, text, err)
		}
	}

	if game.Outcome() != chess.WhiteWon {
		t.Errorf("Outcome() = %v, want %v", game.Outcome(), chess.WhiteWon)
	}
	if checked == 0 {
		t.Fatal("no moves were checked")
	}
}
