/*
Package domain contains the core model of the togglewalk solver.

It defines the automaton being walked and the values the solver reports. The
package is pure: no I/O, no persistence, no logging.

# Key Entities

  - Graph: binary functional graph; every node has a Left and a Right edge.
  - Bits: per-node toggle state, one bit per node (at most 64 nodes).
  - WalkState: the automaton state (node, bits). Graph.Step is its transition.
  - Outcome: ReachedTarget, CycleDetected or Unreachable, with a step count.
  - CacheStats: range cache hit/miss counters for one solve.
  - SolveHooks: observability callbacks fired by the solver.
*/
package domain
