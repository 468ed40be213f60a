package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Sample movetext shared by tests.
const (
	// GrecoGame is Greco's 1620 miniature, ending in mate.
	GrecoGame = `1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6 5. d4 exd4 6. cxd4 Bb4+ 7. Nc3 Nxe4
8. O-O Nxc3 9. bxc3 Bxc3 10. Qb3 Bxa1 11. Bxf7+ Kf8 12. Bg5 Ne7 13. Ne5 Bxd4
14. Bg6 d5 15. Qf3+ Bf5 16. Bxf5 Bxe5 17. Be6+ Bf6 18. Bxf6 gxf6 19. Qxf6+ Ke8
20. Qf7# 1-0
`

	// AnnotatedMovetext mixes comments, NAGs, variations and annotations.
	AnnotatedMovetext = `1. e4 {Best by test} e5 2. Nf3 Nc6 3. Bb5 a6 $1 4. Ba4 Nf6
5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8?! (9... Na5 10. Bc2) 10. d4 Nbd7
; a rest-of-line comment
11. Nbd2 Bb7 12. Bc2 Re8 13. Nf1 Bf8 14. Ng3 g6 15. Bg5 h6 *
`
)

// GrecoGameMoves returns the move tokens of GrecoGame in order.
func GrecoGameMoves() []string {
	var moves []string
	for _, field := range strings.Fields(GrecoGame) {
		if strings.HasSuffix(field, ".") || field == "1-0" {
			continue
		}
		moves = append(moves, field)
	}
	return moves
}

// WriteTempFile writes content into a file under t.TempDir and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // G306: test fixture
		t.Fatal(err)
	}
	return path
}
