package roulette

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/willianszwy/roleta-sub000/internal/roulette Picker

// Picker provides uniform random index selection
type Picker interface {
	// Pick returns a uniform index in [0, n), or -1 when n <= 0
	Pick(n int) int
}

// Config for the default picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultPicker implements Picker with a seeded math/rand source
type DefaultPicker struct {
	random *rand.Rand
}

// New creates a new picker
func New(cfg *Config) *DefaultPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultPicker{
		random: random,
	}
}

// Pick returns a uniform index in [0, n), or -1 when n <= 0
func (p *DefaultPicker) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return p.random.Intn(n)
}

// PickOne selects one element uniformly from items. The second return is
// false when items is empty.
func PickOne[T any](p Picker, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	i := p.Pick(len(items))
	if i < 0 {
		return zero, false
	}
	return items[i], true
}

// PickMany draws up to count elements from items. When withReplacement is
// false each drawn element leaves the working pool, so the result holds
// distinct elements and is truncated to len(items) when count exceeds it.
// When withReplacement is true the pool is left untouched between draws.
func PickMany[T any](p Picker, items []T, count int, withReplacement bool) []T {
	if count <= 0 || len(items) == 0 {
		return nil
	}

	pool := make([]T, len(items))
	copy(pool, items)

	selected := make([]T, 0, count)
	for len(selected) < count && len(pool) > 0 {
		i := p.Pick(len(pool))
		if i < 0 {
			break
		}
		selected = append(selected, pool[i])

		if !withReplacement {
			pool[i] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		}
	}

	return selected
}
