package san

import (
	"testing"

	"github.com/lgbarn/sanmove-go/internal/testutil"
)

// benchMoves covers early, late and failing shapes.
var benchMoves = []string{"e4", "O-O-O", "Nbd7", "exd8=Q+!", "Re3xh3#", "d8=N", "Z9"}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, text := range benchMoves {
			_, _ = Parse(text)
		}
	}
}

func BenchmarkParseGame(b *testing.B) {
	moves := testutil.GrecoGameMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, text := range moves {
			if _, err := Parse(text); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	moves := make([]Move, 0, len(benchMoves))
	for _, text := range benchMoves {
		if m, err := Parse(text); err == nil {
			moves = append(moves, m)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_, _ = Compile(m)
		}
	}
}
