package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// WriteBatch encodes graphs in the format read by Reader.
func WriteBatch(w io.Writer, graphs ...*domain.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(graphs))
	for _, g := range graphs {
		if err := writeCase(bw, g); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeCase(w io.Writer, g *domain.Graph) error {
	if g.Start != 0 {
		return fmt.Errorf("%w: stream format requires start node 0, got %d", domain.ErrMalformedGraph, g.Start)
	}
	fmt.Fprintln(w, g.Len()+1)
	for i := range g.Left {
		if _, err := fmt.Fprintln(w, g.Left[i]+1, g.Right[i]+1); err != nil {
			return err
		}
	}
	return nil
}
