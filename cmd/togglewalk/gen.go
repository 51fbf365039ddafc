package main

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/togglewalk/pkg/adapters/stream"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random batch",
	Long:  `Writes a batch of random graphs in the input format, useful for benchmarks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, _ := cmd.Flags().GetInt("cases")
		nodes, _ := cmd.Flags().GetInt("nodes")
		seed, _ := cmd.Flags().GetInt64("seed")
		if cases < 0 {
			return fmt.Errorf("--cases must not be negative, got %d", cases)
		}
		if nodes < 0 || nodes > domain.MaxNodes {
			return fmt.Errorf("%w: %d nodes (limit %d)", domain.ErrTooManyNodes, nodes, domain.MaxNodes)
		}

		r := rand.New(rand.NewSource(seed))
		graphs := make([]*domain.Graph, cases)
		for i := range graphs {
			left := make([]int, nodes)
			right := make([]int, nodes)
			for v := 0; v < nodes; v++ {
				left[v] = r.Intn(nodes + 1)
				right[v] = r.Intn(nodes + 1)
			}
			g, err := domain.NewGraph(left, right)
			if err != nil {
				return err
			}
			graphs[i] = g
		}
		return stream.WriteBatch(cmd.OutOrStdout(), graphs...)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().Int("cases", 10, "Number of cases")
	genCmd.Flags().Int("nodes", 16, "Internal nodes per case")
	genCmd.Flags().Int64("seed", 1, "Random seed")
}
