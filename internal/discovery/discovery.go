package discovery

import (
	"context"

	"engagemate/internal/models"
)

// Searcher finds candidate posts for a product across a set of subreddits.
// Implementations are pure queries: nothing is persisted and candidates are
// never mutated. A real Reddit client slots in behind this interface without
// touching any caller.
type Searcher interface {
	FindCandidates(ctx context.Context, product models.Product, subreddits []string, keywords []string) ([]models.CandidatePost, error)
}
