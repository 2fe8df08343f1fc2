package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robdd/internal/ast"
	"robdd/internal/parser"
	"robdd/internal/rename"
)

func build(t *testing.T, source string) (Handle, *Driver) {
	t.Helper()
	expr, perr := parser.ParseSource("test", source)
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	vars := rename.Rename(expr)
	store := NewStore(0)
	driver := NewDriver(store, vars)

	h, err := driver.Build(expr)
	require.NoError(t, err)
	return h, driver
}

func TestScenarioTrueIsTerminal(t *testing.T) {
	h, _ := build(t, "true")
	assert.True(t, h.Equals(True))
}

func TestScenarioContradictionIsFalseTerminal(t *testing.T) {
	h, _ := build(t, "a & !a")
	assert.True(t, h.Equals(False))
}

func TestScenarioTautologyIsTrueTerminal(t *testing.T) {
	h, _ := build(t, "a | !a")
	assert.True(t, h.Equals(True))
}

func TestScenarioImpliesBothWaysMatchesIff(t *testing.T) {
	// Both formulas are built over one shared store and VarTable, since
	// handle identity is only meaningful within one store.
	store := NewStore(0)
	vars := rename.Rename(mustParse(t, "(a -> b) & (b -> a)"))
	driver := NewDriver(store, vars)

	lhs, err := driver.Build(mustParse(t, "(a -> b) & (b -> a)"))
	require.NoError(t, err)
	rhs, err := driver.Build(mustParse(t, "a <-> b"))
	require.NoError(t, err)

	assert.True(t, lhs.Equals(rhs), "(a -> b) & (b -> a) must be handle-identical to a <-> b")
}

func TestScenarioThreeClauseCNFMatchesImplicationForm(t *testing.T) {
	store := NewStore(0)
	cnf := mustParse(t, "(!x1 | x2) & (x1 | !x3) & (!x1 | !x2 | x3)")
	vars := rename.Rename(cnf)
	driver := NewDriver(store, vars)

	cnfHandle, err := driver.Build(cnf)
	require.NoError(t, err)

	implForm := mustParse(t, "(x1 -> x2) & (x3 -> x1) & ((x1 & x2) -> x3)")
	implHandle, err := driver.Build(implForm)
	require.NoError(t, err)

	assert.True(t, cnfHandle.Equals(implHandle))

	// Decision agreement over all 8 assignments.
	for x1 := 0; x1 < 2; x1++ {
		for x2 := 0; x2 < 2; x2++ {
			for x3 := 0; x3 < 2; x3++ {
				assign := map[string]bool{"x1": x1 == 1, "x2": x2 == 1, "x3": x3 == 1}
				want := (!assign["x1"] || assign["x2"]) && (assign["x1"] || !assign["x3"]) && (!assign["x1"] || !assign["x2"] || assign["x3"])
				got := evaluate(store, cnfHandle, func(id int) bool { return assign[vars.Name(id)] })
				assert.Equal(t, want, got, "assignment x1=%v x2=%v x3=%v", assign["x1"], assign["x2"], assign["x3"])
			}
		}
	}
}

func TestScenarioSingleVariableThreeNodes(t *testing.T) {
	h, driver := build(t, "a")
	require.False(t, h.IsLeaf())
	assert.Equal(t, 0, driver.Store.Variable(h))
	assert.True(t, driver.Store.Low(h).Equals(False))
	assert.True(t, driver.Store.High(h).Equals(True))
	assert.Equal(t, 1, driver.Store.Size())
}

func mustParse(t *testing.T, source string) ast.Expr {
	t.Helper()
	expr, perr := parser.ParseSource("test", source)
	require.Nil(t, perr, "unexpected parse error: %v", perr)
	return expr
}

// evaluate descends from h, taking low when the variable is false and
// high otherwise, per spec's decision-agreement procedure.
func evaluate(s *Store, h Handle, assign func(id int) bool) bool {
	for !h.IsLeaf() {
		if assign(s.Variable(h)) {
			h = s.High(h)
		} else {
			h = s.Low(h)
		}
	}
	return h.LeafValue()
}
