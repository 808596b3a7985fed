package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsSequentialSlots(t *testing.T) {
	m := &managerImpl{}

	require.NoError(t, m.register("floor", 1))
	require.NoError(t, m.register("wallpaper", 2))
	require.NoError(t, m.register("ceiling", 3))

	slot, ok := m.SlotForTag("floor")
	require.True(t, ok)
	assert.Equal(t, int32(0), slot)

	slot, ok = m.SlotForTag("ceiling")
	require.True(t, ok)
	assert.Equal(t, int32(2), slot)

	assert.Equal(t, 3, m.Len())
}

func TestSlotForTagUnknown(t *testing.T) {
	m := &managerImpl{}
	require.NoError(t, m.register("floor", 1))

	_, ok := m.SlotForTag("missing")
	assert.False(t, ok)
}

func TestRegisterRejectsDuplicateTag(t *testing.T) {
	m := &managerImpl{}
	require.NoError(t, m.register("floor", 1))

	err := m.register("floor", 2)
	assert.ErrorContains(t, err, "already registered")
	assert.Equal(t, 1, m.Len())
}

func TestRegisterEnforcesLimit(t *testing.T) {
	m := &managerImpl{}
	for i := 0; i < MaxTextures; i++ {
		require.NoError(t, m.register(string(rune('a'+i)), uint32(i+1)))
	}

	err := m.register("overflow", 99)
	assert.ErrorContains(t, err, "texture limit")
	assert.Equal(t, MaxTextures, m.Len())
}
