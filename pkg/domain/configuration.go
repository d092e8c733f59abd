package domain

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// MaxSize is the largest ring a Configuration can hold.
// One bit of each 32-bit field is kept free so that Mask never overflows.
const MaxSize = 31

// Configuration is a ring of Size cells, each attribute packed into its own word.
// Bit i of every field belongs to cell i.
type Configuration struct {
	size int

	value        uint32
	intermediate uint32
	captured     uint32
	color        uint32
	mem0         uint32
	mem1         uint32
}

// New creates a configuration of the given size whose cells hold the bits of value.
// Every other attribute starts cleared.
func New(value uint32, size int) (*Configuration, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("size %d: %w", size, ErrSizeOutOfRange)
	}
	if value&^mask(size) != 0 {
		return nil, fmt.Errorf("value %#x for size %d: %w", value, size, ErrValueOverflow)
	}
	return &Configuration{size: size, value: value}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(value uint32, size int) *Configuration {
	c, err := New(value, size)
	if err != nil {
		panic(err)
	}
	return c
}

// Random creates a configuration of the given size with uniformly random cell values.
func Random(size int, r *rand.Rand) (*Configuration, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("size %d: %w", size, ErrSizeOutOfRange)
	}
	return New(r.Uint32()&mask(size), size)
}

func mask(size int) uint32 {
	return uint32(1)<<uint(size) - 1
}

// Size returns the number of cells in the ring.
func (c *Configuration) Size() int { return c.size }

// Value returns the packed cell values.
func (c *Configuration) Value() uint32 { return c.value }

// Mask returns a word with one bit set per cell.
func (c *Configuration) Mask() uint32 { return mask(c.size) }

// Ones counts the cells whose value is 1.
func (c *Configuration) Ones() int { return bits.OnesCount32(c.value) }

// Zeros counts the cells whose value is 0.
func (c *Configuration) Zeros() int { return c.size - c.Ones() }

// Left returns the index of the left neighbour of cell i.
func (c *Configuration) Left(i int) int {
	if i == 0 {
		return c.size - 1
	}
	return i - 1
}

// Cell unpacks the attributes of cell i.
func (c *Configuration) Cell(i int) Cell {
	return Cell{
		Value:        bit(c.value, i),
		Intermediate: bit(c.intermediate, i),
		Captured:     bit(c.captured, i),
		Color:        bit(c.color, i),
		Mem0:         bit(c.mem0, i),
		Mem1:         bit(c.mem1, i),
	}
}

// SetCell packs cell into position i.
func (c *Configuration) SetCell(i int, cell Cell) {
	assign(&c.value, i, cell.Value)
	assign(&c.intermediate, i, cell.Intermediate)
	assign(&c.captured, i, cell.Captured)
	assign(&c.color, i, cell.Color)
	assign(&c.mem0, i, cell.Mem0)
	assign(&c.mem1, i, cell.Mem1)
}

// AllBoolean reports whether no cell is intermediate.
func (c *Configuration) AllBoolean() bool {
	return c.intermediate == 0
}

// Uniform reports whether every cell holds the same value, and which one.
func (c *Configuration) Uniform() (bool, bool) {
	switch c.value {
	case 0:
		return false, true
	case c.Mask():
		return true, true
	}
	return false, false
}

// Clone returns an independent copy.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	return &cp
}

// Equal reports whether both configurations have the same size and the same attributes.
func (c *Configuration) Equal(o *Configuration) bool {
	return *c == *o
}
