// Package movetext splits PGN-style movetext into bare move tokens.
//
// It strips everything a SAN parser should not see: move numbers, comments,
// numeric annotation glyphs, game results, tag pairs and, unless asked to
// keep them, recursive annotation variations.
package movetext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/sanmove-go/internal/errors"
)

// Token is one move token and where it was found.
type Token struct {
	Text   string
	Line   int // 1-based
	Column int // 1-based
	Depth  int // Variation nesting level, 0 for the main line
}

// String returns the token text with its location.
func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s", t.Line, t.Column, t.Text)
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithVariations makes the lexer return moves inside variations as well.
func WithVariations(keep bool) Option {
	return func(l *Lexer) {
		l.keepVariations = keep
	}
}

// WithFile sets the file name reported in errors.
func WithFile(name string) Option {
	return func(l *Lexer) {
		l.file = name
	}
}

// Lexer tokenizes movetext.
type Lexer struct {
	reader   *bufio.Reader
	file     string
	line     string
	pos      int
	lineNum  int
	ravLevel int
	eof      bool

	keepVariations bool

	// Where the innermost open variation started.
	ravLine, ravColumn int
}

// Characters that end a move token.
const delimiters = " \t\r\n{};()$"

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader, opts ...Option) *Lexer {
	l := &Lexer{reader: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// Next returns the next move token, or io.EOF when the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return Token{}, l.finish()
			}
			// Tag pairs and escape lines are whole-line constructs.
			if trimmed := strings.TrimLeft(l.line, " \t"); strings.HasPrefix(trimmed, "[") || strings.HasPrefix(l.line, "%") {
				l.pos = len(l.line)
				continue
			}
		}

		ch := l.line[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.pos++

		case ch == '{':
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}

		case ch == '}':
			return Token{}, l.errorAt(l.pos, "}", errors.ErrUnbalanced)

		case ch == ';':
			l.pos = len(l.line)

		case ch == '$':
			l.pos++
			for l.pos < len(l.line) && isDigit(l.line[l.pos]) {
				l.pos++
			}

		case ch == '(':
			if l.ravLevel == 0 {
				l.ravLine, l.ravColumn = l.lineNum, l.pos+1
			}
			l.ravLevel++
			l.pos++

		case ch == ')':
			if l.ravLevel == 0 {
				return Token{}, l.errorAt(l.pos, ")", errors.ErrUnbalanced)
			}
			l.ravLevel--
			l.pos++

		default:
			if tok, ok := l.gatherWord(); ok {
				return tok, nil
			}
		}
	}
}

// finish reports unclosed variations at end of input.
func (l *Lexer) finish() error {
	if l.ravLevel > 0 {
		return &errors.ParseError{
			Err:    errors.ErrUnterminated,
			File:   l.file,
			Line:   l.ravLine,
			Column: l.ravColumn,
			Got:    "(",
		}
	}
	return io.EOF
}

// skipComment consumes a brace comment, which may span lines.
func (l *Lexer) skipComment() error {
	startLine, startCol := l.lineNum, l.pos+1
	l.pos++
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			l.pos += end + 1
			return nil
		}
		if !l.readLine() {
			return &errors.ParseError{
				Err:    errors.ErrUnterminated,
				File:   l.file,
				Line:   startLine,
				Column: startCol,
				Got:    "{",
			}
		}
	}
}

// gatherWord consumes one whitespace-delimited word and reports whether it
// is a move token.
func (l *Lexer) gatherWord() (Token, bool) {
	start := l.pos
	for l.pos < len(l.line) && strings.IndexByte(delimiters, l.line[l.pos]) < 0 {
		l.pos++
	}
	word := l.line[start:l.pos]

	if isResult(word) {
		return Token{}, false
	}

	// Strip a move number such as "12." or "12..." glued to the move.
	if n := moveNumberLength(word); n > 0 {
		word = word[n:]
		start += n
	}
	if word == "" {
		return Token{}, false
	}

	if l.ravLevel > 0 && !l.keepVariations {
		return Token{}, false
	}

	return Token{Text: word, Line: l.lineNum, Column: start + 1, Depth: l.ravLevel}, true
}

func (l *Lexer) errorAt(pos int, got string, err error) error {
	return &errors.ParseError{
		Err:    err,
		File:   l.file,
		Line:   l.lineNum,
		Column: pos + 1,
		Got:    got,
	}
}

// moveNumberLength returns the length of a leading "digits + dots" prefix,
// or 0 if word does not start with one.
func moveNumberLength(word string) int {
	i := 0
	for i < len(word) && isDigit(word[i]) {
		i++
	}
	if i == 0 || i == len(word) || word[i] != '.' {
		return 0
	}
	for i < len(word) && word[i] == '.' {
		i++
	}
	return i
}

func isResult(word string) bool {
	switch word {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize returns every move token in r.
func Tokenize(r io.Reader, opts ...Option) ([]Token, error) {
	l := NewLexer(r, opts...)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeString is Tokenize over a string.
func TokenizeString(s string, opts ...Option) ([]Token, error) {
	return Tokenize(strings.NewReader(s), opts...)
}
