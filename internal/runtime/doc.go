/*
Package runtime implements the solver core.

  - Detect: Brent's cycle detection over any comparable state, with weighted moves.
  - CanReach: structural reachability of the Terminal, the gate run before any walk.
  - RangeCache: memoized jumps across a contiguous node range.
  - Walker: range caches composed into one super-step function for Detect.
  - Ordering / Relabel: breadth-first renumbering from the most referenced node.
  - Engine: the pipeline tying them together, in cached or plain mode.
*/
package runtime
