package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/runner"
)

// SummaryMarkdown formats a batch summary as a Markdown report.
func SummaryMarkdown(s *runner.Summary) string {
	var sb strings.Builder
	sb.WriteString("## Batch summary\n\n")
	sb.WriteString("| metric | value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| cases | %d |\n", s.Cases)
	fmt.Fprintf(&sb, "| solved | %d |\n", s.Solved)
	for _, kind := range []domain.OutcomeKind{domain.ReachedTarget, domain.CycleDetected, domain.Unreachable} {
		fmt.Fprintf(&sb, "| %s | %d |\n", kind, s.ByKind[kind])
	}
	fmt.Fprintf(&sb, "| cache hits | %d (%d steps) |\n", s.Stats.Hits, s.Stats.HitSteps)
	fmt.Fprintf(&sb, "| cache misses | %d (%d steps) |\n", s.Stats.Misses, s.Stats.MissSteps)
	fmt.Fprintf(&sb, "| duration | %s |\n", s.Duration)
	return sb.String()
}
