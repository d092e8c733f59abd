package domain

// Update runs one sweep: Transition is applied to cells 0..size-1 in order, in place.
// Cell 0 reads cell size-1 before that cell is updated in this sweep; every other cell
// reads a left neighbour that has already been updated.
func (c *Configuration) Update() {
	c.apply(c.size-1, 0)
	for i := 1; i < c.size; i++ {
		c.apply(i-1, i)
	}
}

func (c *Configuration) apply(left, i int) {
	c.SetCell(i, Transition(c.Cell(i), c.Cell(left)))
}

// HasConverged reports whether no cell is intermediate and all values agree.
func (c *Configuration) HasConverged() bool {
	if !c.AllBoolean() {
		return false
	}
	_, ok := c.Uniform()
	return ok
}

// Step runs sweeps until the configuration converges or limit sweeps have run.
// It returns the number of sweeps performed.
func (c *Configuration) Step(limit int) int {
	n := 0
	for n < limit && !c.HasConverged() {
		c.Update()
		n++
	}
	return n
}

// Trace returns snapshots of c: the current state followed by the state after each
// sweep, until convergence or until maxSweeps sweeps have run. c itself is advanced.
func Trace(c *Configuration, maxSweeps int) []*Configuration {
	snapshots := []*Configuration{c.Clone()}
	for i := 0; i < maxSweeps && !c.HasConverged(); i++ {
		c.Update()
		snapshots = append(snapshots, c.Clone())
	}
	return snapshots
}
