package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robdd/grammar"
)

func TestPrecedenceNotBindsTighterThanAnd(t *testing.T) {
	program, err := grammar.ParseString("test", "!a & b")
	require.NoError(t, err)
	assert.Equal(t, "(!a & b)", program.String())
}

func TestPrecedenceAndBindsTighterThanOr(t *testing.T) {
	program, err := grammar.ParseString("test", "a & b | c")
	require.NoError(t, err)
	assert.Equal(t, "((a & b) | c)", program.String())
}

func TestPrecedenceOrBindsTighterThanImplies(t *testing.T) {
	program, err := grammar.ParseString("test", "a | b -> c")
	require.NoError(t, err)
	assert.Equal(t, "((a | b) -> c)", program.String())
}

func TestImpliesIsRightAssociative(t *testing.T) {
	program, err := grammar.ParseString("test", "a -> b -> c")
	require.NoError(t, err)
	assert.Equal(t, "(a -> (b -> c))", program.String())
}

func TestIffAndImpliesShareLowestTierAndNest(t *testing.T) {
	program, err := grammar.ParseString("test", "a <-> b -> c")
	require.NoError(t, err)
	assert.Equal(t, "(a <-> (b -> c))", program.String())
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	program, err := grammar.ParseString("test", "(a | b) & c")
	require.NoError(t, err)
	assert.Equal(t, "((a | b) & c)", program.String())
}

func TestBooleanConstants(t *testing.T) {
	program, err := grammar.ParseString("test", "true & !false")
	require.NoError(t, err)
	assert.Equal(t, "(true & !false)", program.String())
}

func TestMalformedFormulaIsRejected(t *testing.T) {
	_, err := grammar.ParseString("test", "a & & b")
	assert.Error(t, err)
}

func TestUnterminatedParenIsRejected(t *testing.T) {
	_, err := grammar.ParseString("test", "(a & b")
	assert.Error(t, err)
}
