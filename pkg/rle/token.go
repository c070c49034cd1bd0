// Package rle reads and writes patterns in the Run Length Encoded format:
//
//	#N Glider
//	x = 3, y = 3, rule = B3/S23
//	bo$2bo$3o!
//
// Each run is an optional count followed by b (dead), o (alive), $ (end of
// row) or ! (end of pattern).
package rle

import "strconv"

// Run symbols.
const (
	SymDead  byte = 'b'
	SymAlive byte = 'o'
	SymRow   byte = '$'
	SymEnd   byte = '!'
)

// DefaultRule is assumed when a header carries no rule field.
const DefaultRule = "B3/S23"

// MaxLineLen bounds the length of every encoded body line.
const MaxLineLen = 70

// MaxCells bounds the grid size a header may declare.
const MaxCells = 1 << 24

// Token is one run of the body.
type Token struct {
	Symbol byte
	Count  int
}

// String renders the token with its count omitted when it is 1.
func (t Token) String() string {
	if t.Count == 1 {
		return string(t.Symbol)
	}
	return strconv.Itoa(t.Count) + string(t.Symbol)
}

// tokenList accumulates runs in canonical form: adjacent runs of the same
// symbol are merged and dead runs ending a row are dropped.
type tokenList []Token

func (l *tokenList) push(sym byte, n int) {
	if sym == SymRow || sym == SymEnd {
		if k := len(*l); k > 0 && (*l)[k-1].Symbol == SymDead {
			*l = (*l)[:k-1]
		}
	}
	if k := len(*l); k > 0 && (*l)[k-1].Symbol == sym && sym != SymEnd {
		(*l)[k-1].Count += n
		return
	}
	*l = append(*l, Token{Symbol: sym, Count: n})
}
