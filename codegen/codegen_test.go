package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subc-lang/subc/parser"
)

func generateSrc(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	out, err := Generate(prog, DefaultOptions())
	require.NoError(t, err)
	return out
}

func TestGenerate_EmitsIntelSyntaxDirectiveFirst(t *testing.T) {
	out := generateSrc(t, "int main() { return 0; }")
	require.True(t, strings.HasPrefix(out, ".intel_syntax noprefix\n"))
}

func TestGenerate_ForwardDeclarationEmitsNothing(t *testing.T) {
	out := generateSrc(t, "int foo(int a); int main() { return 0; }")
	assert.NotContains(t, out, "foo:")
	assert.Contains(t, out, "main:")
}

func TestGenerate_MainEmitsBothLabels(t *testing.T) {
	out := generateSrc(t, "int main() { return 0; }")
	assert.Contains(t, out, ".globl main")
	assert.Contains(t, out, ".globl _main")
	assert.Contains(t, out, "main:\n_main:")
}

func TestGenerate_NonMainFunctionHasNoAlias(t *testing.T) {
	out := generateSrc(t, "int add(int a, int b) { return a + b; } int main() { return add(1, 2); }")
	assert.Contains(t, out, "add:")
	assert.NotContains(t, out, ".globl _add")
}

func TestGenerate_PrologueAndDefaultEpilogue(t *testing.T) {
	out := generateSrc(t, "int f() { int x = 1; }")
	assert.Contains(t, out, "push rbp")
	assert.Contains(t, out, "mov rbp, rsp")
	assert.Contains(t, out, "mov rsp, rbp")
	assert.Contains(t, out, "pop rbp")
	assert.Contains(t, out, "mov rax, 0")
}

func TestGenerate_FirstSixArgsUseRegisters(t *testing.T) {
	out := generateSrc(t, "int f(int a, int b, int c, int d, int e, int h) { return a; }")
	assert.Contains(t, out, "mov rax, rdi")
}

func TestGenerate_SeventhArgUsesStackOperand(t *testing.T) {
	out := generateSrc(t, "int f(int a, int b, int c, int d, int e, int h, int i) { return i; }")
	assert.Contains(t, out, "QWORD PTR [rbp+16]")
}

func TestGenerate_ArithmeticPushPopShape(t *testing.T) {
	out := generateSrc(t, "int main() { return 1 + 2; }")
	assert.Contains(t, out, "push rax")
	assert.Contains(t, out, "pop rcx")
	assert.Contains(t, out, "add rax, rcx")
}

func TestGenerate_SubtractionPreservesOperandOrder(t *testing.T) {
	out := generateSrc(t, "int main() { return 5 - 2; }")
	assert.Contains(t, out, "mov rcx, rax")
	assert.Contains(t, out, "pop rax")
	assert.Contains(t, out, "sub rax, rcx")
}

func TestGenerate_DivisionZeroesRdx(t *testing.T) {
	out := generateSrc(t, "int main() { return 6 / 2; }")
	assert.Contains(t, out, "mov rdx, 0")
	assert.Contains(t, out, "idiv rcx")
}

func TestGenerate_ComparisonSetsWithCorrectSuffix(t *testing.T) {
	out := generateSrc(t, "int main() { return 1 < 2; }")
	assert.Contains(t, out, "setl al")
}

func TestGenerate_LogicalAndShortCircuitsWithTwoLabels(t *testing.T) {
	out := generateSrc(t, "int main() { return 1 && 2; }")
	assert.Contains(t, out, "jne ")
	assert.Contains(t, out, "setne al")
	assert.Contains(t, out, "\n_0:\n")
	assert.Contains(t, out, "\n_1:\n")
}

func TestGenerate_LogicalOrShortCircuitsWithTwoLabels(t *testing.T) {
	out := generateSrc(t, "int main() { return 1 || 2; }")
	assert.Contains(t, out, "je ")
	assert.Contains(t, out, "mov rax, 1")
	assert.Contains(t, out, "\n_0:\n")
	assert.Contains(t, out, "\n_1:\n")
}

func TestGenerate_ConditionalExpressionShape(t *testing.T) {
	out := generateSrc(t, "int main() { return 1 ? 2 : 3; }")
	assert.Contains(t, out, "cmp rax, 0")
	assert.Contains(t, out, "je _")
}

func TestGenerate_PrefixIncrementReadsAfterMutation(t *testing.T) {
	out := generateSrc(t, "int main() { int x = 0; return ++x; }")
	idx := strings.Index(out, "add QWORD PTR")
	require.GreaterOrEqual(t, idx, 0)
	movIdx := strings.Index(out, "mov rax, QWORD PTR")
	require.Greater(t, movIdx, idx)
}

func TestGenerate_PostfixIncrementReadsBeforeMutation(t *testing.T) {
	out := generateSrc(t, "int main() { int x = 0; return x++; }")
	movIdx := strings.Index(out, "mov rax, QWORD PTR")
	addIdx := strings.Index(out, "add QWORD PTR")
	require.True(t, movIdx >= 0 && addIdx >= 0 && movIdx < addIdx)
}

func TestGenerate_WhileLoopShape(t *testing.T) {
	out := generateSrc(t, "int main() { int x = 0; while (x < 10) { x = x + 1; } return x; }")
	assert.Contains(t, out, "cmp rax, 0")
	assert.Contains(t, out, "je _")
	assert.Contains(t, out, "jmp _")
}

func TestGenerate_DoWhileChecksConditionLast(t *testing.T) {
	out := generateSrc(t, "int main() { int x = 0; do { x = x + 1; } while (x < 10); return x; }")
	assert.Contains(t, out, "jne _")
}

func TestGenerate_BreakJumpsToEnclosingEnd(t *testing.T) {
	out := generateSrc(t, "int main() { for (;;) { break; } return 0; }")
	// The for loop allocates beg=_0, cont=_1, end=_2, in that order.
	lines := strings.Split(out, "\n")
	foundBreakJump := false
	for _, l := range lines {
		if l == "jmp _2" {
			foundBreakJump = true
		}
	}
	assert.True(t, foundBreakJump)
}

func TestGenerate_ContinueJumpsToStepNotCondition(t *testing.T) {
	out := generateSrc(t, "int main() { for (int i = 0; i < 10; i = i + 1) { continue; } return 0; }")
	// The for loop allocates beg=_0, cont=_1, end=_2; cont precedes the step.
	assert.Contains(t, out, "jmp _1\n")
}

func TestGenerate_FunctionCallSavesAndRestoresArgRegisters(t *testing.T) {
	out := generateSrc(t, "int add(int a, int b) { return a + b; } int main() { return add(1, 2); }")
	assert.Contains(t, out, "push rdi")
	assert.Contains(t, out, "push rsi")
	assert.Contains(t, out, "call add")
	assert.Contains(t, out, "pop rsi")
	assert.Contains(t, out, "pop rdi")
}

func TestGenerate_FunctionCallWithStackArgumentsDropsStack(t *testing.T) {
	out := generateSrc(t, "int f(int a, int b, int c, int d, int e, int h, int i); int main() { return f(1,2,3,4,5,6,7); }")
	assert.Contains(t, out, "add rsp, 8")
}

func TestGenerate_NestedScopesDoNotCollideOffsets(t *testing.T) {
	out := generateSrc(t, "int main() { int x = 1; { int y = 2; x = y; } return x; }")
	assert.Contains(t, out, "QWORD PTR [rbp-8]")
	assert.Contains(t, out, "QWORD PTR [rbp-16]")
}

func TestGenerate_UndeclaredVariableIsValidationError(t *testing.T) {
	prog, err := parser.Parse("int main() { return y; }")
	require.NoError(t, err)

	_, err = Generate(prog, DefaultOptions())
	require.Error(t, err)
	stageErr, ok := err.(interface{ Stage() string })
	require.True(t, ok)
	assert.Equal(t, "validation", stageErr.Stage())
}

func TestGenerate_BreakOutsideLoopIsValidationError(t *testing.T) {
	prog, err := parser.Parse("int main() { break; return 0; }")
	require.NoError(t, err)

	_, err = Generate(prog, DefaultOptions())
	require.Error(t, err)
	stageErr, ok := err.(interface{ Stage() string })
	require.True(t, ok)
	assert.Equal(t, "validation", stageErr.Stage())
}

func TestGenerate_LabelsAreUniqueAcrossFunctions(t *testing.T) {
	out := generateSrc(t, "int f(int x){ if(x) return 1; return 0; } int main(){ if(1) return 2; return 0; }")

	seen := make(map[string]int)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "_") && strings.HasSuffix(line, ":") {
			seen[line]++
		}
	}
	for label, count := range seen {
		assert.Equalf(t, 1, count, "label %s emitted more than once", label)
	}
	assert.NotEmpty(t, seen, "expected at least one generated label")
}

func TestGenerate_MainAliasCanBeDisabled(t *testing.T) {
	prog, err := parser.Parse("int main() { return 0; }")
	require.NoError(t, err)

	out, err := Generate(prog, Options{MainAlias: false})
	require.NoError(t, err)
	assert.Contains(t, out, ".globl main")
	assert.NotContains(t, out, ".globl _main")
	assert.NotContains(t, out, "_main:")
}
