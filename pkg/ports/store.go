package ports

import (
	"context"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// ResultStore keeps final answers keyed by graph fingerprint
// (see domain.Graph.Fingerprint). Range caches are never stored.
type ResultStore interface {
	// Save persists the outcome for a fingerprint.
	Save(ctx context.Context, fingerprint string, outcome domain.Outcome) error

	// Load retrieves the outcome for a fingerprint.
	// Returns domain.ErrResultNotFound if nothing is stored.
	Load(ctx context.Context, fingerprint string) (domain.Outcome, error)

	// Delete removes the outcome for a fingerprint.
	Delete(ctx context.Context, fingerprint string) error

	// List returns the stored fingerprints.
	List(ctx context.Context) ([]string, error)
}
