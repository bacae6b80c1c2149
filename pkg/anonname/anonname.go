// Package anonname produces the throwaway display names shown next to
// queries and comments in place of the author's identity.
package anonname

import (
	"math/rand/v2"
	"sync"
)

var adjectives = [...]string{
	"Curious", "Silent", "Hidden", "Anonymous", "Mysterious", "Quiet",
	"Thoughtful", "Clever", "Wise", "Swift", "Bright", "Sharp",
	"Focused", "Calm", "Bold", "Quick", "Gentle", "Noble",
}

var animals = [...]string{
	"Panda", "Falcon", "Tiger", "Owl", "Fox", "Eagle",
	"Wolf", "Bear", "Hawk", "Lion", "Deer", "Raven",
	"Dolphin", "Jaguar", "Phoenix", "Dragon", "Lynx", "Leopard",
}

// Generator draws names from a random source. The zero value is not usable;
// use New or NewWithRand.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator backed by a randomly seeded PCG source.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand returns a Generator using rng, for deterministic tests.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns "<Adjective> <Animal>" with both words drawn
// independently and uniformly.
func (g *Generator) Generate() string {
	g.mu.Lock()
	adj := adjectives[g.rng.IntN(len(adjectives))]
	animal := animals[g.rng.IntN(len(animals))]
	g.mu.Unlock()
	return adj + " " + animal
}

