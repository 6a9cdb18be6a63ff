package suggest

import "math/rand"

const letters = "abcdefghijklmnopqrstuvwxyz"
const digits = "0123456789"

// Symbols is the fixed pool the symbol position is drawn from.
const Symbols = "!@#$%^&*;?"

// Source supplies uniform random integers. The default source delegates to
// the shared math/rand source, which is safe for concurrent use.
type Source interface {
	Intn(n int) int
}

type Generator struct {
	source Source
}

// NewGenerator returns a hint generator drawing from source. Passing nil uses
// the shared math/rand source.
func NewGenerator(source Source) *Generator {
	if source == nil {
		source = sharedSource{}
	}

	return &Generator{
		source: source,
	}
}

// Hint returns a 3-character strengthening hint: one lowercase letter, one
// digit, one symbol, in that order. The hint is advice to mix in, never a
// replacement password.
func (g *Generator) Hint() string {
	return string([]byte{
		letters[g.source.Intn(len(letters))],
		digits[g.source.Intn(len(digits))],
		Symbols[g.source.Intn(len(Symbols))],
	})
}

type sharedSource struct{}

func (sharedSource) Intn(n int) int {
	return rand.Intn(n)
}
