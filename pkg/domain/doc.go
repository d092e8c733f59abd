/*
Package domain contains the automaton itself: the packed ring configuration, the
sequential local rule, the sweep driver and the correctness oracle.

It is kept pure and free of I/O, logging and concurrency. Callers that need to evaluate
many configurations in parallel (see package verify) create one Configuration per
goroutine; a Configuration is never shared.

# Key Entities

  - Configuration: a ring of up to MaxSize cells packed into six 32-bit words.
  - Cell: the unpacked attributes of a single cell (value, intermediate, captured,
    color and the two-slot memory set).
  - Transition: the pure local rule, computing a cell's next state from its own state
    and its left neighbour's.
  - Verdict: the outcome of running the oracle on one initial configuration.

# Sweep Order

Update applies the rule to cells 0, 1, ..., size-1 in that order. Cell 0 sees its left
neighbour (size-1) as it was before the sweep; every other cell sees its left neighbour
as already updated in the same sweep. This makes the automaton sequential rather than
synchronous, and the rule is only correct under that order.
*/
package domain
