package rle

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"rlelife/pkg/core"
)

func gridOf(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g := core.NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		require.Len(t, row, g.Cols, "row %d", r)
		for c, ch := range row {
			g.Set(r, c, ch == 'o')
		}
	}
	return g
}

func TestDecodeGlider(t *testing.T) {
	p, err := DecodeString("x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n")
	require.NoError(t, err)
	require.Equal(t, "B3/S23", p.Rule)
	require.Equal(t, 3, p.Grid.Rows)
	require.Equal(t, 3, p.Grid.Cols)
	require.Equal(t, []uint8{0, 1, 0}, p.Grid.Row(0))
	require.Equal(t, []uint8{0, 0, 1}, p.Grid.Row(1))
	require.Equal(t, []uint8{1, 1, 1}, p.Grid.Row(2))
}

func TestDecodeDocument(t *testing.T) {
	src := `#N Gosper-ish
#C made up for the test
  x=12 ,y =  3,rule=B36/S23
1
2o2$
#C comments may appear inside the body
2b
o!trailing text
this line is never read
`
	p, err := DecodeString(src)
	require.NoError(t, err)
	require.Equal(t, "B36/S23", p.Rule)
	require.Equal(t, []string{"#N Gosper-ish", "#C made up for the test", "#C comments may appear inside the body"}, p.Comments)
	want := gridOf(t,
		"oooooooooooo",
		"............",
		"..o.........",
	)
	require.Empty(t, cmp.Diff(want.String(), p.Grid.String()))
}

func TestDecodeDefaultRule(t *testing.T) {
	p, err := DecodeString("x = 1, y = 1\no!")
	require.NoError(t, err)
	require.Equal(t, DefaultRule, p.Rule)
}

func TestDecodeKeepsRuleVerbatim(t *testing.T) {
	p, err := DecodeString("x = 1, y = 1, rule = 23/3\no!")
	require.NoError(t, err)
	require.Equal(t, "23/3", p.Rule)
}

var decodeErrorTests = []struct {
	testName    string
	data        string
	expectError string
	expectLine  int
}{{
	testName:    "row-overflow",
	data:        "x = 2, y = 1\n3o!",
	expectError: "row 1 has more than 2 cells",
	expectLine:  2,
}, {
	testName:    "row-overflow-split-runs",
	data:        "x = 3, y = 2\no$2bo\n2o!",
	expectError: "row 2 has more than 3 cells",
	expectLine:  3,
}, {
	testName:    "too-many-rows",
	data:        "x = 1, y = 1\no$o!",
	expectError: "pattern has more than 1 rows",
	expectLine:  2,
}, {
	testName:    "blank-rows-past-height",
	data:        "x = 1, y = 3\no5$o!",
	expectError: "pattern has more than 3 rows",
	expectLine:  2,
}, {
	testName:    "too-few-rows",
	data:        "x = 1, y = 2\no!",
	expectError: "pattern has 1 rows, header declares y = 2",
}, {
	testName:    "missing-terminator",
	data:        "x = 2, y = 1\n2o\n",
	expectError: "not terminated by '!'",
}, {
	testName:    "bad-character",
	data:        "x = 2, y = 1\noz!",
	expectError: `unexpected character 'z'`,
	expectLine:  2,
}, {
	testName:    "inner-whitespace",
	data:        "x = 2, y = 1\no o!",
	expectError: `unexpected character ' '`,
}, {
	testName:    "zero-count",
	data:        "x = 2, y = 1\n0o!",
	expectError: `zero-length 'o' run`,
}, {
	testName:    "count-before-end",
	data:        "x = 2, y = 1\no2!",
	expectError: "run count 2 before '!'",
}, {
	testName:    "duplicate-header",
	data:        "x = 1, y = 1\nx = 1, y = 1\no!",
	expectError: "duplicate header line",
	expectLine:  2,
}, {
	testName:    "body-before-header",
	data:        "o!\nx = 1, y = 1",
	expectError: "pattern data before header line",
	expectLine:  1,
}, {
	testName:    "missing-header",
	data:        "#C nothing here\n",
	expectError: "missing header line",
}, {
	testName:    "negative-width",
	data:        "x = -1, y = 1\no!",
	expectError: `header x = "-1" is not a positive integer`,
	expectLine:  1,
}, {
	testName:    "zero-height",
	data:        "x = 1, y = 0\no!",
	expectError: `header y = "0" is not a positive integer`,
}, {
	testName:    "missing-height",
	data:        "x = 1\no!",
	expectError: "header must declare both x and y",
}, {
	testName:    "unknown-field",
	data:        "x = 1, y = 1, foo = 2\no!",
	expectError: `unknown header field "foo"`,
}, {
	testName:    "field-without-equals",
	data:        "x = 1, y = 1, B3/S23\no!",
	expectError: `header field "B3/S23" has no '='`,
}, {
	testName:    "repeated-field",
	data:        "x = 1, x = 2, y = 1\no!",
	expectError: `header field "x" repeated`,
}, {
	testName:    "huge-grid",
	data:        "x = 100000, y = 100000\no!",
	expectError: "limit is 16777216",
}}

func TestDecodeErrors(t *testing.T) {
	for _, test := range decodeErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			p, err := DecodeString(test.data)
			require.Nil(t, p, "no partial pattern on error")
			require.ErrorContains(t, err, test.expectError)
			var ferr *core.FormatError
			require.ErrorAs(t, err, &ferr)
			if test.expectLine != 0 {
				require.Equal(t, test.expectLine, ferr.Line)
			}
		})
	}
}

func TestEncodeGlider(t *testing.T) {
	g := gridOf(t,
		".....",
		"..o..",
		"...o.",
		".ooo.",
		".....",
	)
	out, err := EncodeToString(g, "B3/S23")
	require.NoError(t, err)
	require.Equal(t, "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n", out)
}

func TestEncodeCanonicalRuns(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{{
		name: "trailing-dead-dropped",
		rows: []string{"o..", "ooo"},
		want: "o$3o!",
	}, {
		name: "blank-rows-merge",
		rows: []string{"oo", "..", "..", "o."},
		want: "2o3$o!",
	}, {
		name: "leading-dead-kept",
		rows: []string{"..o", "o.."},
		want: "2bo$o!",
	}, {
		name: "interior-runs",
		rows: []string{"oo..o...oo"},
		want: "2o2bo3b2o!",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks, _, err := Tokens(gridOf(t, test.rows...))
			require.NoError(t, err)
			var sb strings.Builder
			for i, tok := range toks {
				if i > 0 {
					require.NotEqual(t, toks[i-1].Symbol, tok.Symbol, "adjacent tokens must differ")
					if tok.Symbol == SymRow || tok.Symbol == SymEnd {
						require.NotEqual(t, SymDead, toks[i-1].Symbol, "dead run before row end")
					}
				}
				sb.WriteString(tok.String())
			}
			require.Equal(t, test.want, sb.String())
		})
	}
}

var tokenLine = regexp.MustCompile(`^([0-9]*[bo$!])+$`)

func requireWrapped(t *testing.T, text string) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines[1:] {
		require.LessOrEqual(t, len(line), MaxLineLen, "body line %d too long", i+1)
		require.Regexp(t, tokenLine, line, "body line %d splits a token", i+1)
	}
	require.True(t, strings.HasSuffix(lines[len(lines)-1], "!"))
}

func TestEncodeLineWrap(t *testing.T) {
	solid := core.NewGrid(1, 100)
	for c := 0; c < 100; c++ {
		solid.Set(0, c, true)
	}
	out, err := EncodeToString(solid, "B3/S23")
	require.NoError(t, err)
	require.Equal(t, "x = 100, y = 1, rule = B3/S23\n100o!\n", out)
	requireWrapped(t, out)

	alternating := core.NewGrid(1, 99)
	for c := 0; c < 99; c += 2 {
		alternating.Set(0, c, true)
	}
	out, err = EncodeToString(alternating, "B3/S23")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Len(t, lines[1], MaxLineLen)
	require.Len(t, lines[2], 100-MaxLineLen)
	requireWrapped(t, out)

	// Three-character runs never straddle the 70 column limit.
	runs := core.NewGrid(1, 400)
	for c := 0; c < 400; c++ {
		runs.Set(0, c, (c/10)%2 == 0)
	}
	out, err = EncodeToString(runs, "B3/S23")
	require.NoError(t, err)
	requireWrapped(t, out)
	p, err := DecodeString(out)
	require.NoError(t, err)
	require.True(t, p.Grid.Equal(runs.Crop(core.Box{Top: 0, Bottom: 0, MinCol: 0, MaxCol: 389})))
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, core.NewGrid(4, 4), "B3/S23")
	require.ErrorIs(t, err, core.ErrEmptyPattern)
	require.Zero(t, buf.Len(), "nothing may be written for an empty pattern")
}

func TestEncodeRejectsUnwritableRule(t *testing.T) {
	g := gridOf(t, "o")
	for _, r := range []string{"", "B3/S23, y = 4", "B3\n/S23"} {
		_, err := EncodeToString(g, r)
		var ferr *core.FormatError
		require.ErrorAs(t, err, &ferr, "rule %q", r)
	}
}

func TestRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := core.RandomGrid(int(seed%7)+1, int(seed%11)*13+1, int(seed*4%100), seed)
		require.NoError(t, err)
		box, err := core.BoundingBox(g)
		if err != nil {
			require.ErrorIs(t, err, core.ErrEmptyPattern)
			continue
		}
		text, err := EncodeToString(g, "B36/S23")
		require.NoError(t, err)
		requireWrapped(t, text)

		p, err := DecodeString(text)
		require.NoError(t, err, "text:\n%s", text)
		require.Equal(t, "B36/S23", p.Rule)
		want := g.Crop(box)
		require.Empty(t, cmp.Diff(want.String(), p.Grid.String()), "seed %d", seed)
	}
}

func TestRoundTripLargePattern(t *testing.T) {
	g, err := core.RandomGrid(60, 150, 50, 3)
	require.NoError(t, err)
	box, err := core.BoundingBox(g)
	require.NoError(t, err)

	text, err := EncodeToString(g, "B3/S23")
	require.NoError(t, err)
	requireWrapped(t, text)

	p, err := DecodeString(text)
	require.NoError(t, err)
	require.True(t, p.Grid.Equal(g.Crop(box)))
}

func TestEncodePatternKeepsComments(t *testing.T) {
	src := "#N Blinker\n#O someone\nx = 3, y = 1, rule = B3/S23\n3o!\n"
	p, err := DecodeString(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePattern(&buf, p))
	require.Equal(t, src, buf.String())

	p.Comments = append(p.Comments, "plain note")
	buf.Reset()
	require.NoError(t, EncodePattern(&buf, p))
	require.Contains(t, buf.String(), "#C plain note\n")
}
