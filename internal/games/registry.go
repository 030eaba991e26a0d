package games

import (
	"errors"
	"strings"
)

// Registry holds the loaded game catalog and serves lookups and searches
// for the game-select screen.
type Registry struct {
	games []GameDef
	byID  map[string]*GameDef
}

// NewRegistry creates a registry from catalog entries.
func NewRegistry(entries []GameDef) *Registry {
	r := &Registry{
		games: entries,
		byID:  make(map[string]*GameDef, len(entries)),
	}
	for i := range entries {
		r.byID[entries[i].ID] = &entries[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded games.json.
func LoadRegistry() (*Registry, error) {
	entries, err := load[[]GameDef]("games.json")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("no games loaded from games.json")
	}
	return NewRegistry(entries), nil
}

// MustLoadRegistry loads a registry, panicking on error. The catalog must
// be present for the launcher to function.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the game with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *GameDef {
	return r.byID[id]
}

// Search returns the catalog entries whose title or tags match the query,
// case-insensitively. An empty query returns the full catalog.
func (r *Registry) Search(query string) []GameDef {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.games
	}
	var matches []GameDef
	for _, g := range r.games {
		if strings.Contains(strings.ToLower(g.Title), query) {
			matches = append(matches, g)
			continue
		}
		for _, tag := range g.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				matches = append(matches, g)
				break
			}
		}
	}
	return matches
}

// All returns every catalog entry.
func (r *Registry) All() []GameDef {
	return r.games
}

// Count returns the number of catalog entries.
func (r *Registry) Count() int {
	return len(r.games)
}
