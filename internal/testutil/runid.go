// Package testutil provides deterministic helpers shared by tests.
package testutil

// FixedRunIDGenerator generates the same run id every time, so log output
// from a test invocation can be asserted on.
//
// Thread-safety: FixedRunIDGenerator is stateless and safe for concurrent use.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a fixed run id generator.
// If id is empty, Generate() returns "test-run-default".
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run id.
//
// Implements cli.RunIDGenerator.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
