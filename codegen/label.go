package codegen

import "fmt"

// labelGenerator issues unique assembly labels `_0, _1, _2, …`. One
// instance is constructed per Generate call and shared, by pointer,
// across every function's Context — labels must be unique across the
// whole emitted program, not just within one function, or two functions
// can each emit `_0:` and GNU as rejects the duplicate symbol. Grounded
// on original_source/src/codegen/context/label.rs's LabelGenerator,
// kept here as a plain counter threaded by pointer rather than the Rust
// original's Arc<Mutex<_>> — subc is single-threaded, so sharing by
// pointer is enough.
type labelGenerator struct {
	next int
}

func newLabelGenerator() *labelGenerator {
	return &labelGenerator{}
}

// unique returns the next label and advances the counter.
func (g *labelGenerator) unique() string {
	l := fmt.Sprintf("_%d", g.next)
	g.next++
	return l
}
