package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGazetteer(t *testing.T) {
	g := Default()

	state, ok := g.StateFor("Sydney")
	require.True(t, ok)
	assert.Equal(t, "NSW", state)

	_, ok = g.StateFor("Springfield West")
	assert.False(t, ok)

	assert.True(t, g.IsStateName("new south wales"))
	assert.True(t, g.IsStateName("QLD"))
	assert.False(t, g.IsStateName("Brisbane"))

	assert.True(t, g.IsNonCity("cbd and inner suburbs"))
	assert.True(t, g.IsNonCity("greater melbourne"))
	assert.False(t, g.IsNonCity("hobart"))
}

func TestFindStateAbbrev(t *testing.T) {
	g := Default()

	state, start, ok := g.FindStateAbbrev("Fortitude Valley, Brisbane QLD")
	require.True(t, ok)
	assert.Equal(t, "QLD", state)
	assert.Equal(t, "Fortitude Valley, Brisbane ", "Fortitude Valley, Brisbane QLD"[:start])

	// Abbreviations match as whole tokens only.
	_, _, ok = g.FindStateAbbrev("Tasman Street")
	assert.False(t, ok)

	_, _, ok = g.FindStateAbbrev("act now")
	assert.True(t, ok, "token matching is case-insensitive")
}
