package san

import "regexp"

// Suffix groups shared by every shape.
const (
	promotionGroup  = `(?:=?(?P<promo>[KQBNR]))?`
	checkGroup      = `(?P<check>\+|#)?`
	annotationGroup = `(?P<ann>\?\?|\?!|\?|!!|!)?`
)

// shape is one SAN/LAN grammar plus the group layout used to extract a Move.
type shape struct {
	name    string
	pattern *regexp.Regexp
	capture bool

	// Submatch indices, -1 when the pattern lacks the group.
	castle, piece  int
	fromFile       int
	fromRank       int
	toFile, toRank int
	promo          int
	check, ann     int
}

func newShape(name, body string, capture bool) shape {
	re := regexp.MustCompile(`^` + body + checkGroup + annotationGroup + `$`)
	return shape{
		name:     name,
		pattern:  re,
		capture:  capture,
		castle:   re.SubexpIndex("castle"),
		piece:    re.SubexpIndex("piece"),
		fromFile: re.SubexpIndex("ff"),
		fromRank: re.SubexpIndex("fr"),
		toFile:   re.SubexpIndex("tf"),
		toRank:   re.SubexpIndex("tr"),
		promo:    re.SubexpIndex("promo"),
		check:    re.SubexpIndex("check"),
		ann:      re.SubexpIndex("ann"),
	}
}

// shapes is tried in order and the first whole-string match wins. Several
// grammars overlap textually, so the order is part of the grammar.
// Built once; never mutated.
var shapes = []shape{
	newShape("castle", `(?P<castle>O-O-O|O-O)`, false),
	newShape("pawn push", `(?P<tf>[a-h])(?P<tr>[1-8])`, false),
	newShape("pawn push long", `(?P<ff>[a-h])(?P<fr>[1-8])(?P<tf>[a-h])(?P<tr>[1-8])`+promotionGroup, false),
	newShape("piece push", `(?P<piece>[KQBNR])(?P<tf>[a-h])(?P<tr>[1-8])`, false),
	newShape("piece push from file", `(?P<piece>[KQBNR])(?P<ff>[a-h])(?P<tf>[a-h])(?P<tr>[1-8])`, false),
	newShape("piece push from rank", `(?P<piece>[KQBNR])(?P<fr>[1-8])(?P<tf>[a-h])(?P<tr>[1-8])`, false),
	newShape("piece push long", `(?P<piece>[KQBNR])(?P<ff>[a-h])(?P<fr>[1-8])(?P<tf>[a-h])(?P<tr>[1-8])`, false),
	newShape("pawn capture", `(?P<ff>[a-h])x(?P<tf>[a-h])(?P<tr>[1-8])`+promotionGroup, true),
	newShape("pawn capture long", `(?P<ff>[a-h])(?P<fr>[1-8])x(?P<tf>[a-h])(?P<tr>[1-8])`+promotionGroup, true),
	newShape("piece capture", `(?P<piece>[KQBNR])x(?P<tf>[a-h])(?P<tr>[1-8])`, true),
	newShape("piece capture from file", `(?P<piece>[KQBNR])(?P<ff>[a-h])x(?P<tf>[a-h])(?P<tr>[1-8])`, true),
	newShape("piece capture from rank", `(?P<piece>[KQBNR])(?P<fr>[1-8])x(?P<tf>[a-h])(?P<tr>[1-8])`, true),
	newShape("piece capture long", `(?P<piece>[KQBNR])(?P<ff>[a-h])(?P<fr>[1-8])x(?P<tf>[a-h])(?P<tr>[1-8])`, true),
	newShape("pawn promotion", `(?P<tf>[a-h])(?P<tr>[1-8])=?(?P<promo>[KQBNR])`, false),
}

// group returns submatch i, or "" when the shape has no such group.
func group(g []string, i int) string {
	if i < 0 {
		return ""
	}
	return g[i]
}

// match reports whether text is entirely of this shape and, if so,
// extracts the move.
func (s *shape) match(text string) (Move, bool, error) {
	g := s.pattern.FindStringSubmatch(text)
	if g == nil {
		return Move{}, false, nil
	}
	m, err := s.extract(g)
	if err != nil {
		return Move{}, true, err
	}
	return m, true, nil
}

func (s *shape) extract(g []string) (Move, error) {
	var m Move

	if token := group(g, s.castle); token != "" {
		side, err := ParseCastleType(token)
		if err != nil {
			return Move{}, err
		}
		m = NewMove(King, Castle{Side: side})
	} else {
		piece, err := ParsePiece(group(g, s.piece))
		if err != nil {
			return Move{}, err
		}
		from, err := ParsePosition(group(g, s.fromFile) + group(g, s.fromRank))
		if err != nil {
			return Move{}, err
		}
		to, err := ParsePosition(group(g, s.toFile) + group(g, s.toRank))
		if err != nil {
			return Move{}, err
		}
		m = NewMove(piece, Normal{From: from, To: to})
		m.Capture = s.capture
	}

	// An absent promotion group must not decode as Pawn.
	if token := group(g, s.promo); token != "" {
		promo, err := ParsePiece(token)
		if err != nil {
			return Move{}, err
		}
		m.Promotion = promo
	}

	if token := group(g, s.check); token != "" {
		check, err := ParseCheckType(token)
		if err != nil {
			return Move{}, err
		}
		m.Check = check
	}

	if token := group(g, s.ann); token != "" {
		ann, err := ParseAnnotation(token)
		if err != nil {
			return Move{}, err
		}
		m.Annotation = ann
	}

	return m, nil
}
