package ebtesting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/ezequielgarcia/ebtree"
)

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some
	// fixed value so that the generated corpora are the same from run
	// to run.
	Seed int64

	// KeyBytes is the width of fixed-size keys produced by
	// GenerateKeys. Zero defaults to 8.
	KeyBytes int
}

type TestContext struct {
	T    *testing.T
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.KeyBytes == 0 {
		cfg.KeyBytes = 8
	}
	return &TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
}

// NewArena returns zero-filled record storage for capacity records,
// ready for use: the zero Node is the detached state.
func (c *TestContext) NewArena(capacity int) []ebtree.Node {
	return make([]ebtree.Node, capacity)
}

// GenerateKeys returns n distinct fixed-width random keys, suitable for
// full-length indirect inserts. Deterministic for a given seed.
func (c *TestContext) GenerateKeys(n int) [][]byte {
	seen := make(map[string]bool, n)
	keys := make([][]byte, 0, n)
	for len(keys) < n {
		k := make([]byte, c.Cfg.KeyBytes)
		c.Rand.Read(k)
		if seen[string(k)] {
			continue
		}
		seen[string(k)] = true
		keys = append(keys, k)
	}
	return keys
}

// GenerateStringKeys returns n distinct terminated string keys derived
// from UUIDs. Distinct by construction, not deterministic across runs;
// use GenerateKeys where run-to-run stability matters.
func (c *TestContext) GenerateStringKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = ebtree.StringKey(uuid.NewString())
	}
	return keys
}

// Shuffle permutes keys in place, deterministically for a given seed.
func (c *TestContext) Shuffle(keys [][]byte) {
	c.Rand.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

// SortedCopy returns the keys in lexicographic byte order without
// disturbing the input, for use as a walk reference.
func SortedCopy(keys [][]byte) [][]byte {
	out := make([][]byte, len(keys))
	copy(out, keys)
	sort.Slice(out, func(i, j int) bool {
		return string(out[i]) < string(out[j])
	})
	return out
}
