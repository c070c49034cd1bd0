package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rlelife/pkg/core"
)

// Pattern is a decoded RLE document.
type Pattern struct {
	Grid *core.Grid
	// Rule is the header's rule field, verbatim. It is not validated here.
	Rule string
	// Comments holds the '#' lines in input order, including the '#'.
	Comments []string
}

// DecodeString decodes RLE text held in a string.
func DecodeString(s string) (*Pattern, error) {
	return Decode(strings.NewReader(s))
}

// Decode reads an RLE document. The grid has exactly the dimensions declared
// by the header; rows shorter than the declared width are padded with dead
// cells, while longer rows, a row count different from the declared height,
// or any character outside the run grammar yield a *core.FormatError.
// Anything after the terminating '!' is ignored.
func Decode(r io.Reader) (*Pattern, error) {
	var (
		d      decoder
		p      Pattern
		header bool
		lineNo int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for !d.done && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case line[0] == '#':
			p.Comments = append(p.Comments, line)
		case line[0] == 'x':
			if header {
				return nil, &core.FormatError{Line: lineNo, Msg: "duplicate header line"}
			}
			w, h, rule, err := parseHeader(line)
			if err != nil {
				return nil, &core.FormatError{Line: lineNo, Msg: err.Error()}
			}
			header = true
			p.Rule = rule
			d.grid = core.NewGrid(h, w)
		default:
			if !header {
				return nil, &core.FormatError{Line: lineNo, Msg: "pattern data before header line"}
			}
			if err := d.feed(line); err != nil {
				return nil, &core.FormatError{Line: lineNo, Msg: err.Error()}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading pattern: %w", err)
	}
	if !header {
		return nil, &core.FormatError{Msg: "missing header line"}
	}
	if !d.done {
		return nil, &core.FormatError{Line: lineNo, Msg: "pattern is not terminated by '!'"}
	}
	if rows := d.row + 1; rows != d.grid.Rows {
		return nil, &core.FormatError{Line: lineNo, Msg: fmt.Sprintf("pattern has %d rows, header declares y = %d", rows, d.grid.Rows)}
	}
	p.Grid = d.grid
	return &p, nil
}

// parseHeader reads "x = W, y = H[, rule = R]".
func parseHeader(line string) (w, h int, rule string, err error) {
	seen := map[string]bool{}
	for _, field := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, "", fmt.Errorf("header field %q has no '='", strings.TrimSpace(field))
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if seen[key] {
			return 0, 0, "", fmt.Errorf("header field %q repeated", key)
		}
		seen[key] = true
		switch key {
		case "x":
			w, err = parseDimension(key, val)
		case "y":
			h, err = parseDimension(key, val)
		case "rule":
			if val == "" {
				err = errors.New("header rule is empty")
			}
			rule = val
		default:
			err = fmt.Errorf("unknown header field %q", key)
		}
		if err != nil {
			return 0, 0, "", err
		}
	}
	if !seen["x"] || !seen["y"] {
		return 0, 0, "", errors.New("header must declare both x and y")
	}
	if w > MaxCells/h {
		return 0, 0, "", fmt.Errorf("header declares %dx%d cells, limit is %d", w, h, MaxCells)
	}
	if rule == "" {
		rule = DefaultRule
	}
	return w, h, rule, nil
}

func parseDimension(key, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("header %s = %q is not a positive integer", key, val)
	}
	return n, nil
}

// decoder applies runs to a preallocated dead grid. Pending count digits
// carry over line breaks, matching a body formed by concatenating lines.
type decoder struct {
	grid     *core.Grid
	row, col int
	count    int
	hasCount bool
	done     bool
}

func (d *decoder) feed(line string) error {
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch ch {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			d.count = d.count*10 + int(ch-'0')
			d.hasCount = true
			if d.count > MaxCells {
				return fmt.Errorf("run count exceeds %d", MaxCells)
			}
		case SymDead, SymAlive:
			n, err := d.take(ch)
			if err != nil {
				return err
			}
			if d.col+n > d.grid.Cols {
				return fmt.Errorf("row %d has more than %d cells", d.row+1, d.grid.Cols)
			}
			if ch == SymAlive {
				row := d.grid.Row(d.row)
				for c := d.col; c < d.col+n; c++ {
					row[c] = core.Alive
				}
			}
			d.col += n
		case SymRow:
			n, err := d.take(ch)
			if err != nil {
				return err
			}
			if d.row+n >= d.grid.Rows {
				return fmt.Errorf("pattern has more than %d rows", d.grid.Rows)
			}
			d.row += n
			d.col = 0
		case SymEnd:
			if d.hasCount {
				return fmt.Errorf("run count %d before '!'", d.count)
			}
			d.done = true
			return nil
		default:
			return fmt.Errorf("unexpected character %q", ch)
		}
	}
	return nil
}

// take consumes the pending count for symbol sym, defaulting to 1.
func (d *decoder) take(sym byte) (int, error) {
	if !d.hasCount {
		return 1, nil
	}
	n := d.count
	d.count, d.hasCount = 0, false
	if n == 0 {
		return 0, fmt.Errorf("zero-length %q run", sym)
	}
	return n, nil
}
