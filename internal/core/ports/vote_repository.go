package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// VoteRepository defines the interface for cast-vote persistence.
// Votes are append-only and never deduplicated.
type VoteRepository interface {
	Record(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	// RecordBatch persists all votes of one ballot in a single transaction.
	RecordBatch(ctx context.Context, votes []domain.Vote) error
	// ListByCategory returns votes in insertion order, unaggregated.
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Vote, error)
	ListAll(ctx context.Context) ([]domain.Vote, error)
}
