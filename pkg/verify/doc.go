/*
Package verify checks the automaton exhaustively: every initial configuration of a ring
size is run through the correctness oracle, in parallel, until a counterexample turns
up or the whole range has been covered.

By default only values with the top bit clear are enumerated. Complementing a
configuration complements its majority, and the search assumes it complements the
outcome as well; WithFullRange drops that assumption at twice the cost.
*/
package verify
