package san

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/lgbarn/sanmove-go/internal/testutil"
)

func normal(piece Piece, from, to Position) Move {
	return NewMove(piece, Normal{From: from, To: to})
}

func capture(piece Piece, from, to Position) Move {
	m := normal(piece, from, to)
	m.Capture = true
	return m
}

func TestParseCastle(t *testing.T) {
	tests := []struct {
		text string
		side CastleType
	}{
		{"O-O", Kingside},
		{"O-O-O", Queenside},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m, Move{Kind: Castle{Side: tt.side}, Piece: King})
			testutil.AssertTrue(t, m.IsCastle())
			testutil.AssertEqual(t, m.Origin(), Unspecified)
			testutil.AssertEqual(t, m.Destination(), Unspecified)
		})
	}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		text  string
		shape string
		want  Move
	}{
		{"e4", "pawn push", normal(Pawn, Unspecified, Square(4, 4))},
		{"e2e4", "pawn push long", normal(Pawn, Square(4, 6), Square(4, 4))},
		{"Qe4", "piece push", normal(Queen, Unspecified, Square(4, 4))},
		{"Qbe4", "piece push from file", normal(Queen, FileOnly(1), Square(4, 4))},
		{"Q1e4", "piece push from rank", normal(Queen, RankOnly(7), Square(4, 4))},
		{"Qb1e4", "piece push long", normal(Queen, Square(1, 7), Square(4, 4))},
		{"exd4", "pawn capture", capture(Pawn, FileOnly(4), Square(3, 4))},
		{"e3xd4", "pawn capture long", capture(Pawn, Square(4, 5), Square(3, 4))},
		{"Rxh3", "piece capture", capture(Rook, Unspecified, Square(7, 5))},
		{"Rexh3", "piece capture from file", capture(Rook, FileOnly(4), Square(7, 5))},
		{"R1xh3", "piece capture from rank", capture(Rook, RankOnly(7), Square(7, 5))},
		{"Re3xh3", "piece capture long", capture(Rook, Square(4, 5), Square(7, 5))},
		{"Ng1f3", "piece push long", normal(Knight, Square(6, 7), Square(5, 5))},
		{"Kxe2", "piece capture", capture(King, Unspecified, Square(4, 6))},
		{"Bb5", "piece push", normal(Bishop, Unspecified, Square(1, 3))},
		{"bxc3", "pawn capture", capture(Pawn, FileOnly(1), Square(2, 5))},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, ShapeOf(tt.text), tt.shape)
		})
	}
}

func TestParsePromotion(t *testing.T) {
	withPromo := func(m Move, p Piece) Move {
		m.Promotion = p
		return m
	}

	tests := []struct {
		text string
		want Move
	}{
		{"exd8=Q", withPromo(capture(Pawn, FileOnly(4), Square(3, 0)), Queen)},
		{"exd8Q", withPromo(capture(Pawn, FileOnly(4), Square(3, 0)), Queen)},
		{"e7xd8=N", withPromo(capture(Pawn, Square(4, 1), Square(3, 0)), Knight)},
		{"d8=Q", withPromo(normal(Pawn, Unspecified, Square(3, 0)), Queen)},
		{"a1R", withPromo(normal(Pawn, Unspecified, Square(0, 7)), Rook)},
		{"e7e8=B", withPromo(normal(Pawn, Square(4, 1), Square(4, 0)), Bishop)},
		{"b7b8", normal(Pawn, Square(1, 1), Square(1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, got.IsPromotion(), tt.want.Promotion != NoPiece)
		})
	}
}

func TestParseSuffixes(t *testing.T) {
	tests := []struct {
		text  string
		check CheckType
		ann   Annotation
	}{
		{"e4", NoCheck, NoAnnotation},
		{"e4+", Check, NoAnnotation},
		{"Qh4#", Mate, NoAnnotation},
		{"Nf3!", NoCheck, Good},
		{"Nf3!!", NoCheck, Brilliant},
		{"Nf3?", NoCheck, Mistake},
		{"Nf3??", NoCheck, Blunder},
		{"Nf3?!", NoCheck, Interesting},
		{"exd8=Q+!", Check, Good},
		{"O-O+", Check, NoAnnotation},
		{"O-O-O#??", Mate, Blunder},
		{"Re3xh3#!!", Mate, Brilliant},
		{"d8=N+?", Check, Mistake},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Check, tt.check)
			testutil.AssertEqual(t, got.Annotation, tt.ann)
		})
	}
}

func TestParsePawnPushAllSquares(t *testing.T) {
	for f := byte('a'); f <= 'h'; f++ {
		for r := byte('1'); r <= '8'; r++ {
			text := string([]byte{f, r})
			got, err := Parse(text)
			testutil.AssertNoError(t, err, text)
			testutil.AssertEqual(t, got, normal(Pawn, Unspecified, Square(int(f-'a'), int('8'-r))), text)
		}
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		"Z9",
		"e9",
		"i4",
		"Q",
		"Qxx4",
		"O-O-O-O",
		"0-0",
		"e4 ",
		" e4",
		"e4+#",
		"e4!?",
		"e4???",
		"Pe4",
		"qe4",
		"Q0e4",
		"Q9e4",
		"Rxh3=Q",
		"e8=",
		"exd",
		"e4x",
		"1. e4",
		"--",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			got, err := Parse(text)
			testutil.AssertErrorIs(t, err, ErrExhaustedGrammar)
			testutil.AssertEqual(t, got, Move{}, "failed parse should not yield a partial move")

			var grammarErr *GrammarError
			if !errors.As(err, &grammarErr) {
				t.Fatalf("Parse(%q) error %T is not a *GrammarError", text, err)
			}
			testutil.AssertEqual(t, grammarErr.Input, text)
			testutil.AssertEqual(t, ShapeOf(text), "")
		})
	}
}

func TestParseCaptureFlag(t *testing.T) {
	inputs := []string{"e4", "e2e4", "Qe4", "Qbe4", "Q1e4", "Qb1e4", "exd4", "e3xd4",
		"Rxh3", "Rexh3", "R1xh3", "Re3xh3", "d8=Q", "exd8=Q", "O-O", "O-O-O"}

	for _, text := range inputs {
		m, err := Parse(text)
		testutil.AssertNoError(t, err, text)
		testutil.AssertEqual(t, m.Capture, strings.Contains(text, "x"), "capture flag of %s", text)
	}
}

func TestShapesOrder(t *testing.T) {
	names := Shapes()
	testutil.AssertEqual(t, len(names), 14)
	testutil.AssertEqual(t, names[0], "castle")
	testutil.AssertEqual(t, names[1], "pawn push")
	testutil.AssertEqual(t, names[len(names)-1], "pawn promotion")
}

func TestMustParse(t *testing.T) {
	testutil.AssertEqual(t, MustParse("Nf3"), normal(Knight, Unspecified, Square(5, 5)))

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("Z9")
}

// Parse shares only the read-only shape table between goroutines.
func TestParseConcurrent(t *testing.T) {
	moves := testutil.GrecoGameMoves()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range moves {
				m, err := Parse(text)
				if err != nil {
					t.Errorf("Parse(%q) error: %v", text, err)
					return
				}
				if got := m.String(); got != text {
					t.Errorf("Parse(%q).String() = %q", text, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
