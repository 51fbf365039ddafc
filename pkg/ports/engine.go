package ports

import (
	"context"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// Solver decides one graph. caseNo labels logs and hooks only.
type Solver interface {
	Solve(ctx context.Context, caseNo int, g *domain.Graph) (*domain.Report, error)
}
