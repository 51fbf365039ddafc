/*
Package runner implements the batch driver.

It reads the case count and every case from an input stream, hands the
selected graphs to a ports.Solver and writes one `Case #i: <answer>` line per
solved case, always in case order.

# Usage

	r := runner.NewRunner(engine,
		runner.WithParallel(4),
		runner.WithStats(true),
	)

	summary, err := r.Run(ctx, os.Stdin, os.Stdout)
*/
package runner
