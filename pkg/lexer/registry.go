package lexer

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// The process-wide registry maps names, aliases and filename globs to
// lexers. Grammar packages register themselves at init time.
var registry = struct {
	sync.RWMutex
	byName map[string]*Lexer
	all    []*Lexer
}{byName: make(map[string]*Lexer)}

// Register adds l under its name and aliases and returns it, so a grammar
// package can register itself in a single package-level assignment.
func Register(l *Lexer) *Lexer {
	registry.Lock()
	defer registry.Unlock()
	registry.byName[strings.ToLower(l.config.Name)] = l
	for _, alias := range l.config.Aliases {
		registry.byName[strings.ToLower(alias)] = l
	}
	registry.all = append(registry.all, l)
	return l
}

// Get looks a lexer up by name or alias, case-insensitively.
func Get(name string) (*Lexer, bool) {
	registry.RLock()
	defer registry.RUnlock()
	l, ok := registry.byName[strings.ToLower(name)]
	return l, ok
}

// Match returns the first registered lexer whose filename globs claim the
// file's base name.
func Match(filename string) (*Lexer, bool) {
	base := filepath.Base(filename)
	registry.RLock()
	defer registry.RUnlock()
	for _, l := range registry.all {
		for _, pattern := range l.config.Filenames {
			if ok, _ := path.Match(pattern, base); ok {
				return l, true
			}
		}
	}
	return nil, false
}

// Registered returns the registered lexers sorted by name.
func Registered() []*Lexer {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]*Lexer, len(registry.all))
	copy(out, registry.all)
	sort.Slice(out, func(i, j int) bool { return out[i].config.Name < out[j].config.Name })
	return out
}
