package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_SequentialOrder(t *testing.T) {
	// cells: 1 1 0
	c := MustNew(0b011, 3)
	c.Update()

	// Cell 0 saw cell 2 as the Boolean 0 it was before the sweep and kick-started.
	assert.Equal(t, Cell{Value: true, Intermediate: true, Captured: true, Mem1: true}, c.Cell(0))
	// Cell 1 saw the updated cell 0 and already knew its symbol.
	assert.Equal(t, Cell{Value: true, Intermediate: true, Mem1: true}, c.Cell(1))
	// Cell 2 saw the updated cell 1 and added its 0.
	assert.Equal(t, Cell{Intermediate: true, Captured: true, Mem0: true, Mem1: true}, c.Cell(2))
}

func TestUpdate_RingBoundaryReadsPreSweepState(t *testing.T) {
	// cells: 0 1 0. Cell 0 must read the Boolean 0 in cell 2, not the
	// intermediate cell 2 produced later in the same sweep.
	c := MustNew(0b010, 3)
	c.Update()

	assert.Equal(t, Cell{}, c.Cell(0))
	assert.Equal(t, Cell{Value: true, Intermediate: true, Captured: true, Mem1: true}, c.Cell(1))
	assert.Equal(t, Cell{Intermediate: true, Captured: true, Mem0: true, Mem1: true}, c.Cell(2))

	// Next sweep: cell 0 now reads the intermediate cell 2 from the previous sweep.
	c.Update()
	assert.Equal(t, Cell{Intermediate: true, Mem0: true, Mem1: true}, c.Cell(0))
}

func TestUpdate_SizeThreeRun(t *testing.T) {
	c := MustNew(0b011, 3)

	c.Update()
	c.Update()
	assert.Equal(t, Cell{Value: true, Intermediate: true, Captured: true, Color: true}, c.Cell(0))
	assert.Equal(t, Cell{Value: true, Intermediate: true, Captured: true, Color: true, Mem1: true}, c.Cell(1))
	assert.Equal(t, Cell{Intermediate: true, Captured: true, Color: true, Mem1: true}, c.Cell(2))
	assert.False(t, c.HasConverged())

	c.Update()
	assert.True(t, c.HasConverged())
	assert.Equal(t, uint32(0b111), c.Value())
}

func TestHasConverged(t *testing.T) {
	assert.True(t, MustNew(0, 5).HasConverged())
	assert.True(t, MustNew(0b11111, 5).HasConverged())
	assert.False(t, MustNew(0b11011, 5).HasConverged())

	c := MustNew(0b11111, 5)
	c.SetCell(2, Cell{Value: true, Intermediate: true})
	assert.False(t, c.HasConverged(), "an intermediate cell is never converged")
}

func TestUpdate_FixedPointIsStable(t *testing.T) {
	const size = 7
	for v := uint32(0); v < 1<<size; v++ {
		c := MustNew(v, size)
		c.Step(4 * size)
		if !c.HasConverged() {
			continue
		}
		before := c.Clone()
		c.Update()
		c.Update()
		require.True(t, before.Equal(c), "value %07b changed after convergence", v)
	}
}

func TestStep(t *testing.T) {
	c := MustNew(0b011, 3)
	assert.Equal(t, 1, c.Step(1))
	assert.False(t, c.HasConverged())
	assert.Equal(t, 2, c.Step(10))
	assert.True(t, c.HasConverged())
	assert.Equal(t, 0, c.Step(10))
}

func TestTrace(t *testing.T) {
	c := MustNew(0b011, 3)
	snapshots := Trace(c, 10)

	require.Len(t, snapshots, 4)
	assert.Equal(t, uint32(0b011), snapshots[0].Value())
	assert.True(t, snapshots[0].AllBoolean())
	assert.True(t, snapshots[3].HasConverged())
	assert.True(t, snapshots[3].Equal(c))

	// snapshots are copies
	snapshots[3].SetCell(0, Cell{})
	assert.Equal(t, uint32(0b111), c.Value())
}

func TestTrace_Bounded(t *testing.T) {
	c := MustNew(0b011, 3)
	snapshots := Trace(c, 1)
	assert.Len(t, snapshots, 2)
	assert.False(t, c.HasConverged())
}
