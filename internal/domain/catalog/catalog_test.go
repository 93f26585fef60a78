package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized("inventory"))
	assert.True(t, Recognized("hardware"))
	assert.False(t, Recognized("bogus"))
	assert.False(t, Recognized(""))

	// Module names are matched exactly, no case folding.
	assert.False(t, Recognized("Inventory"))
}

func TestTableFor(t *testing.T) {
	table, ok := TableFor("network")
	require.True(t, ok)
	assert.Equal(t, "module_network", table)

	_, ok = TableFor("unknown")
	assert.False(t, ok)
}

func TestModules_SortedAndComplete(t *testing.T) {
	names := Modules()
	require.Len(t, names, 12)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		table, ok := TableFor(name)
		require.True(t, ok)
		assert.Equal(t, "module_"+name, table)
	}
}
