package ecsbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitoftime/ecsbench"
)

func TestArenaAllocGet(t *testing.T) {
	arena := ecsbench.NewPointArena(4)

	s0 := arena.Alloc(0, 0)
	s1 := arena.Alloc(1, 1)
	s2 := arena.Alloc(2, 2)

	assert.Equal(t, 3, arena.Len())
	assert.NotEqual(t, s0, s1)
	assert.NotEqual(t, s1, s2)

	assert.Equal(t, ecsbench.Point{1, 1}, arena.Get(s1))
}

func TestArenaUpdate(t *testing.T) {
	arena := ecsbench.NewPointArena(1)
	slot := arena.Alloc(5, 5)

	for i := 0; i < 3; i++ {
		arena.Update(slot, func(pt *ecsbench.Point) {
			pt.X++
			pt.Y++
		})
	}

	assert.Equal(t, ecsbench.Point{8, 8}, arena.Get(slot))
}

func TestArenaSharedSlot(t *testing.T) {
	arena := ecsbench.NewPointArena(1)
	slot := arena.Alloc(0, 0)

	// Two referrers holding the same slot see each other's writes.
	a := slot
	b := slot
	arena.Update(a, func(pt *ecsbench.Point) { pt.X++ })
	arena.Update(b, func(pt *ecsbench.Point) { pt.X++ })

	require.Equal(t, uint32(2), arena.Get(slot).X)
	require.Equal(t, uint32(0), arena.Get(slot).Y)
}

func TestArenaGrowsPastCapacity(t *testing.T) {
	arena := ecsbench.NewPointArena(1)
	for i := 0; i < 100; i++ {
		arena.Alloc(uint32(i), uint32(i))
	}
	require.Equal(t, 100, arena.Len())
	assert.Equal(t, ecsbench.Point{99, 99}, arena.Get(ecsbench.Slot(99)))
}
