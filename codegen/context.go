package codegen

// loopLabels names the continue/break targets of the innermost
// enclosing loop; nil when a statement is not inside a loop.
type loopLabels struct {
	cont string
	end  string
}

// Context is the generator's sole mutable state, threaded by pointer
// through every Generate call. It bundles a shared label factory, a
// scoped variable map, and the labels of the nearest enclosing loop (if
// any). Grounded on original_source/src/codegen/context/mod.rs, whose
// Rust version wraps the label factory and variable map in
// Arc<Mutex<_>> to share them across clones; subc is single-threaded,
// so a bare pointer to the label generator plays the same role without
// the synchronization machinery.
type Context struct {
	labels *labelGenerator
	vars   *variableMap
	loop   *loopLabels
}

// functionScope starts a fresh Context for a function body: a new
// variable map seeded with its parameters, no enclosing loop, and the
// label generator shared across the whole program. Labels must be
// globally unique (spec §5, §9, testable property #7): a counter reset
// per function would let two functions each emit `_0:`, which GNU as
// rejects as a duplicate symbol. Only the variable map is per-function;
// the label generator is owned by Generate and threaded through every
// function the same way original_source/src/codegen/mod.rs threads one
// LabelGenerator through every Function::generate call.
func functionScope(labels *labelGenerator, paramNames []string) *Context {
	return &Context{
		labels: labels,
		vars:   withArgs(paramNames),
	}
}

// innerScope derives a child Context for a nested block: a variable map
// that inherits the parent's visible bindings as "extern" with a fresh
// empty local set, the same label factory, and the same enclosing loop.
func (c *Context) innerScope() *Context {
	return &Context{
		labels: c.labels,
		vars:   c.vars.extend(),
		loop:   c.loop,
	}
}

// innerLoop derives a child Context for entering a loop body: the same
// variable map and label factory, with the enclosing loop overridden to
// (cont, end).
func (c *Context) innerLoop(cont, end string) *Context {
	return &Context{
		labels: c.labels,
		vars:   c.vars,
		loop:   &loopLabels{cont: cont, end: end},
	}
}

// uniqueLabel issues the next unique assembly label.
func (c *Context) uniqueLabel() string {
	return c.labels.unique()
}

// declare records id as a new local in the current scope.
func (c *Context) declare(id string) error {
	return c.vars.declare(id)
}

// resolve returns the operand text for id.
func (c *Context) resolve(id string) (string, error) {
	return c.vars.resolve(id)
}
