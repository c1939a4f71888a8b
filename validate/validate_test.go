package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subc-lang/subc/parser"
)

func TestValidate_AcceptsConsistentRedeclaration(t *testing.T) {
	prog, err := parser.Parse("int add(int a, int b); int add(int a, int b) { return a + b; }")
	require.NoError(t, err)
	assert.NoError(t, Validate(prog))
}

func TestValidate_RejectsConflictingSignature(t *testing.T) {
	prog, err := parser.Parse("int add(int a, int b); int add(int a) { return a; }")
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Conflicting definitions for function add")
}

func TestValidate_RejectsUndeclaredCall(t *testing.T) {
	prog, err := parser.Parse("int main() { return foo(1); }")
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function foo")
}

func TestValidate_RejectsArityMismatch(t *testing.T) {
	prog, err := parser.Parse("int add(int a, int b); int main() { return add(1); }")
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function add")
}

func TestValidate_WalksBothBranchesOfIf(t *testing.T) {
	prog, err := parser.Parse(`
		int main() {
			if (1) { return foo(); } else { return 0; }
		}
	`)
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function foo")
}

func TestValidate_WalksForDeclInitAndCond(t *testing.T) {
	prog, err := parser.Parse(`
		int main() {
			for (int i = foo(); i < 10; i = i + 1) { }
			return 0;
		}
	`)
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function foo")
}

func TestValidate_WalksDoCondition(t *testing.T) {
	prog, err := parser.Parse(`
		int main() {
			do { } while (foo());
			return 0;
		}
	`)
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function foo")
}

func TestValidate_ForwardReferenceStillFailsIfCalledBeforeDeclared(t *testing.T) {
	// foo is called inside main, but declared only afterwards; the
	// incremental signature map has not seen it yet at the call site.
	prog, err := parser.Parse(`
		int main() { return foo(); }
		int foo() { return 1; }
	`)
	require.NoError(t, err)

	err = Validate(prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared function foo")
}
