package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_IDsAreOneBased(t *testing.T) {
	items := List()
	require.Len(t, items, 32)
	assert.Equal(t, Region{ID: 1, Nombre: "Amazonas"}, items[0])
	assert.Equal(t, Region{ID: 32, Nombre: "Vichada"}, items[31])
}

func TestCanonical(t *testing.T) {
	got, ok := Canonical("  valle del cauca ")
	require.True(t, ok)
	assert.Equal(t, "Valle del Cauca", got)

	_, ok = Canonical("Texas")
	assert.False(t, ok)

	_, ok = Canonical("")
	assert.False(t, ok)
}

func TestNames_ReturnsCopy(t *testing.T) {
	n := Names()
	n[0] = "X"
	assert.Equal(t, "Amazonas", Names()[0])
}
