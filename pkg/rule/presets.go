package rule

import (
	"sort"
	"strings"
)

var presets = map[string]Set{}

// Register adds a named rule preset. Names are case-insensitive.
func Register(name string, s Set) {
	if name == "" {
		return
	}
	presets[strings.ToLower(name)] = s
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves either a preset name or a literal B/S rule string.
func Lookup(nameOrRule string) (Set, error) {
	if s, ok := presets[strings.ToLower(nameOrRule)]; ok {
		return s, nil
	}
	return Parse(nameOrRule)
}

func init() {
	Register("life", Life)
	Register("highlife", MustParse("B36/S23"))
	Register("seeds", MustParse("B2/S"))
	Register("daynight", MustParse("B3678/S34678"))
	Register("replicator", MustParse("B1357/S1357"))
	Register("lifewithoutdeath", MustParse("B3/S012345678"))
}
