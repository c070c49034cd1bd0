package rle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"rlelife/pkg/core"
)

// Tokens returns the canonical run list for the bounding box of g together
// with the box itself. It returns core.ErrEmptyPattern if g has no live cells.
func Tokens(g *core.Grid) ([]Token, core.Box, error) {
	box, err := core.BoundingBox(g)
	if err != nil {
		return nil, core.Box{}, err
	}

	var toks tokenList
	for r := box.Top; r <= box.Bottom; r++ {
		row := g.Row(r)[box.MinCol : box.MaxCol+1]
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && row[c] == row[start] {
				continue
			}
			sym := SymDead
			if row[start] == core.Alive {
				sym = SymAlive
			}
			toks.push(sym, c-start)
			start = c
		}
		if r < box.Bottom {
			toks.push(SymRow, 1)
		} else {
			toks.push(SymEnd, 1)
		}
	}
	return toks, box, nil
}

// Encode writes the bounding box of g as RLE text with the given rule in
// the header. Nothing is written when an error is returned.
func Encode(w io.Writer, g *core.Grid, rule string) error {
	return encode(w, nil, g, rule)
}

// EncodeToString is like Encode but returns the text.
func EncodeToString(g *core.Grid, rule string) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, g, rule); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodePattern writes p's comment lines followed by its grid and rule.
func EncodePattern(w io.Writer, p *Pattern) error {
	return encode(w, p.Comments, p.Grid, p.Rule)
}

func encode(w io.Writer, comments []string, g *core.Grid, rule string) error {
	if rule == "" || strings.ContainsAny(rule, ",\r\n") {
		return &core.FormatError{Msg: fmt.Sprintf("rule %q cannot be written in a header", rule)}
	}
	toks, box, err := Tokens(g)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, c := range comments {
		if !strings.HasPrefix(c, "#") {
			c = "#C " + c
		}
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "x = %d, y = %d, rule = %s\n", box.Width(), box.Height(), rule)

	lineLen := 0
	for _, t := range toks {
		s := t.String()
		if lineLen > 0 && lineLen+len(s) > MaxLineLen {
			buf.WriteByte('\n')
			lineLen = 0
		}
		buf.WriteString(s)
		lineLen += len(s)
	}
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}
