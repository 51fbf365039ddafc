package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/togglewalk/internal/presentation/graph"
	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/aretw0/togglewalk/pkg/adapters/stream"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export a case as a Mermaid diagram",
	Long: `Reads a batch and outputs a Mermaid diagram (graph TD) of one case. With
--relabel the nodes are shown in the order the cached walk uses, grouped into
the default ranges.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caseNo, _ := cmd.Flags().GetInt("case")
		relabel, _ := cmd.Flags().GetBool("relabel")
		trace, _ := cmd.Flags().GetInt("trace")

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}

		g, err := readCase(in, caseNo)
		if err != nil {
			return err
		}

		overlay := &graph.GraphOverlay{CurrentNode: -1}
		if relabel {
			if g, err = runtime.Relabel(g); err != nil {
				return err
			}
			overlay.Borders = []int{runtime.DefaultBorder(g.Len())}
		}
		if trace > 0 {
			s := g.StartState()
			for i := 0; i < trace && s.Node != g.Terminal(); i++ {
				overlay.VisitedNodes = append(overlay.VisitedNodes, s.Node)
				s = g.Step(s)
			}
			overlay.CurrentNode = s.Node
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(g, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("case", 1, "Case number to export")
	graphCmd.Flags().Bool("relabel", false, "Show the relabeled numbering and default ranges")
	graphCmd.Flags().Int("trace", 0, "Highlight the nodes visited in the first N steps")
}

func readCase(in io.Reader, caseNo int) (*domain.Graph, error) {
	r := stream.NewReader(in)
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	if caseNo < 1 || caseNo > count {
		return nil, fmt.Errorf("%w: case %d of %d", domain.ErrCaseSelection, caseNo, count)
	}
	for {
		g, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: case %d missing", domain.ErrMalformedInput, caseNo)
		}
		if err != nil {
			return nil, err
		}
		if r.Case() == caseNo {
			return g, nil
		}
	}
}
