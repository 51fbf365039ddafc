/*
Package togglewalk decides where a toggle walk on a binary functional graph ends.

Every internal node has a left and a right successor and one toggle bit. A
walk starts at node 0 with all bits clear; at each step the current node's
bit is flipped and the walk follows the edge selected by the new bit. The
walk either reaches the terminal node (the answer is the step count), is
trapped in a cycle of states (reported as "Infinity N") or can never reach
the terminal from the start at all ("Unreachable").

# Walks

A plain walk runs Brent's cycle detection over unit steps. The cached walk
relabels nodes so that tightly connected ones share a range, splits the node
space at one or more borders and memoises whole range crossings by entry
node and the bits of that range. Both modes agree on every reached answer
and on which graphs loop.

# Usage

	s := togglewalk.New(togglewalk.WithCaching(true))

	report, err := s.SolveEdges(ctx, []int{1, 0}, []int{2, 0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Outcome) // 3

Batches in the classic text format are solved with NewRunner:

	summary, err := s.NewRunner(runner.WithParallel(4)).Run(ctx, os.Stdin, os.Stdout)
*/
package togglewalk
