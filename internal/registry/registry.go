// Package registry provides a global registry of piece randomizers.
// Strategies register themselves in init() functions, so hosts and the CLI
// can pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Info describes a registered randomizer.
type Info struct {
	Name  string
	Title string
}

// Factory creates a randomizer seeded with seed.
// The same seed must always yield the same sequence of picks.
type Factory func(seed int64) tetris.Randomizer

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a randomizer factory to the registry.
// Typically called from an init() function.
// Panics if name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: randomizer %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns all registered randomizers, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds a randomizer by name.
// Returns an error if name is not registered.
func Create(name string, seed int64) (tetris.Randomizer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown randomizer %q", name)
	}

	return f(seed), nil
}

// Exists checks if a randomizer with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
