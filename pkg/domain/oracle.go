package domain

import "math/bits"

// Verdict is the outcome of running the oracle on one initial configuration.
type Verdict struct {
	Value uint32
	Size  int

	// Majority is the majority symbol of the initial value; meaningless when Tie is set.
	Majority bool
	Tie      bool

	Converged bool
	Sweeps    int
	// Final is the value word when the run stopped.
	Final uint32

	Correct bool
}

// Majority returns the majority symbol among the first size bits of value,
// and whether both symbols occur equally often.
func Majority(value uint32, size int) (bool, bool) {
	ones := bits.OnesCount32(value & mask(size))
	zeros := size - ones
	return ones > zeros, ones == zeros
}

// SweepBudget is the number of sweeps after which a configuration that has not
// converged is judged incorrect. The budget check runs before every sweep, so a run
// may perform SweepBudget+1 sweeps.
func SweepBudget(size int) int {
	return size
}

// Evaluate runs the automaton from the current state and compares its uniform
// outcome with the majority of the current values. Ties are accepted without running.
func (c *Configuration) Evaluate() Verdict {
	v := Verdict{Value: c.value, Size: c.size}
	v.Majority, v.Tie = Majority(c.value, c.size)
	if v.Tie {
		v.Correct = true
		v.Final = c.value
		v.Converged = c.HasConverged()
		return v
	}

	budget := SweepBudget(c.size)
	for !c.HasConverged() {
		if v.Sweeps > budget {
			v.Final = c.value
			return v
		}
		c.Update()
		v.Sweeps++
	}

	v.Converged = true
	v.Final = c.value
	v.Correct = bit(c.value, 0) == v.Majority
	return v
}

// IsCorrect reports whether the automaton classifies the current configuration.
func (c *Configuration) IsCorrect() bool {
	return c.Evaluate().Correct
}
