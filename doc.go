/*
Package densca simulates a sequential ring cellular automaton that solves the density
classification task, and checks that claim by brute force.

Given a ring of 0/1 cells, the automaton is expected to converge to all 0s when 0s are
the strict majority and to all 1s when 1s are. Rings with as many 0s as 1s are
unconstrained. The automaton is sequential: one sweep updates the cells in index order,
each cell seeing its left neighbour's already-updated state.

# Usage

Evaluate a single ring:

	v, err := densca.Check(0b011, 3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.Correct, v.Sweeps)

Search every ring of sizes 2 to 20:

	reports, err := densca.VerifyAll(ctx, 2, 20, slog.Default())

The building blocks live in pkg/domain (the automaton) and pkg/verify (the parallel
exhaustive search). The densca command wraps both.

This is empirical verification only, bounded by the 31-cell capacity of a
Configuration; it is not a proof.
*/
package densca
