package shuffle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/aimafia/coordinator/internal/shuffle Shuffler

// Shuffler produces uniform random permutations. Role dealing draws two
// independent permutations from it, one for roles and one for seats.
type Shuffler interface {
	Perm(n int) []int
}

// Permuter implements Shuffler with a seedable source
type Permuter struct {
	random *rand.Rand
}

// Config for the permuter
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new permuter
func New(cfg *Config) *Permuter {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Permuter{
		random: rand.New(source),
	}
}

// Perm returns a uniform random permutation of 0..n-1 (Fisher-Yates)
func (p *Permuter) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := p.random.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
