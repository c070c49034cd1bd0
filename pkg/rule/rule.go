// Package rule parses and formats birth/survival rules written as
// "B<digits>/S<digits>".
package rule

import (
	"fmt"
	"strings"

	"rlelife/pkg/core"
)

// MaxNeighbors is the largest neighbour count a cell can observe.
const MaxNeighbors = 8

// Set holds the neighbour counts that cause birth and survival. The zero
// value is a valid rule under which nothing is ever born and nothing survives.
type Set struct {
	birth   [MaxNeighbors + 1]bool
	survive [MaxNeighbors + 1]bool
}

// Life is Conway's B3/S23.
var Life = MustParse("B3/S23")

// New builds a Set from explicit neighbour counts.
func New(birth, survive []int) (Set, error) {
	var s Set
	for _, n := range birth {
		if n < 0 || n > MaxNeighbors {
			return Set{}, &core.FormatError{Msg: fmt.Sprintf("birth count %d outside 0..%d", n, MaxNeighbors)}
		}
		s.birth[n] = true
	}
	for _, n := range survive {
		if n < 0 || n > MaxNeighbors {
			return Set{}, &core.FormatError{Msg: fmt.Sprintf("survive count %d outside 0..%d", n, MaxNeighbors)}
		}
		s.survive[n] = true
	}
	return s, nil
}

// Parse reads a rule of the exact shape "B<digits>/S<digits>", each digit in
// 0..8. Repeated digits collapse.
func Parse(str string) (Set, error) {
	b, sv, ok := strings.Cut(str, "/")
	if !ok || strings.Contains(sv, "/") {
		return Set{}, &core.FormatError{Msg: fmt.Sprintf("rule %q must contain exactly one '/'", str)}
	}
	if !strings.HasPrefix(b, "B") {
		return Set{}, &core.FormatError{Msg: fmt.Sprintf("rule %q must start with a B segment", str)}
	}
	if !strings.HasPrefix(sv, "S") {
		return Set{}, &core.FormatError{Msg: fmt.Sprintf("rule %q must have an S segment after '/'", str)}
	}

	var s Set
	if err := parseDigits(str, b[1:], &s.birth); err != nil {
		return Set{}, err
	}
	if err := parseDigits(str, sv[1:], &s.survive); err != nil {
		return Set{}, err
	}
	return s, nil
}

func parseDigits(rule, digits string, dst *[MaxNeighbors + 1]bool) error {
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '0'+MaxNeighbors {
			return &core.FormatError{Msg: fmt.Sprintf("rule %q has invalid neighbour count %q", rule, c)}
		}
		dst[c-'0'] = true
	}
	return nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Set {
	s, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return s
}

// Born reports whether a dead cell with n live neighbours comes alive.
func (s Set) Born(n int) bool { return n >= 0 && n <= MaxNeighbors && s.birth[n] }

// Survives reports whether a live cell with n live neighbours stays alive.
func (s Set) Survives(n int) bool { return n >= 0 && n <= MaxNeighbors && s.survive[n] }

// Next returns the state of a cell in the following generation.
func (s Set) Next(alive bool, n int) bool {
	if alive {
		return s.Survives(n)
	}
	return s.Born(n)
}

// Birth returns the birth counts in ascending order.
func (s Set) Birth() []int { return counts(&s.birth) }

// Survive returns the survival counts in ascending order.
func (s Set) Survive() []int { return counts(&s.survive) }

func counts(set *[MaxNeighbors + 1]bool) []int {
	var out []int
	for n, ok := range set {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// String formats the rule canonically, digits ascending.
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	writeDigits(&sb, &s.birth)
	sb.WriteString("/S")
	writeDigits(&sb, &s.survive)
	return sb.String()
}

func writeDigits(sb *strings.Builder, set *[MaxNeighbors + 1]bool) {
	for n, ok := range set {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
}
