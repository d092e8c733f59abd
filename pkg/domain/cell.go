package domain

// Cell is the unpacked state of a single cell of the ring.
//
// Only Value is meaningful for a Boolean cell. For an intermediate cell Value holds the
// original symbol, and Captured, Color, Mem0 and Mem1 carry the signal bookkeeping.
type Cell struct {
	Value        bool
	Intermediate bool
	Captured     bool
	Color        bool
	Mem0         bool
	Mem1         bool
}

// Holds reports whether the memory set contains v.
func (c Cell) Holds(v bool) bool {
	if v {
		return c.Mem1
	}
	return c.Mem0
}

func (c *Cell) remember(v bool) {
	if v {
		c.Mem1 = true
	} else {
		c.Mem0 = true
	}
}

func bit(word uint32, i int) bool {
	return word&(1<<uint(i)) != 0
}

func assign(word *uint32, i int, v bool) {
	if v {
		*word |= 1 << uint(i)
	} else {
		*word &^= 1 << uint(i)
	}
}
