package strategy

import (
	"sort"
	"strings"
)

var registry = map[string]Strategy{}

func Register(s Strategy) {
	registry[strings.ToLower(s.Name)] = s
}

func Get(name string) (Strategy, bool) {
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
