package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// BallotInput carries one submission of the voting form. Either choice may be
// empty: a category without a choice records no vote.
type BallotInput struct {
	Female string
	Male   string
}

// BallotResult reports how many votes one submission recorded.
type BallotResult struct {
	Recorded int
}

// ResultsOutput is the raw, unaggregated tally view. Tallying is the
// caller's responsibility.
type ResultsOutput struct {
	Female []domain.Vote `json:"female_votes"`
	Male   []domain.Vote `json:"male_votes"`
}

// VotingService records ballots and reads results. Session gating happens at
// the HTTP layer; these operations assume an authenticated caller.
type VotingService interface {
	SubmitBallot(ctx context.Context, input BallotInput) (*BallotResult, error)
	Results(ctx context.Context) (*ResultsOutput, error)
	Candidates() domain.Candidates
}
