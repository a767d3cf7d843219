package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// VotingService validates ballots against the configured candidate lists and
// records them. Repeated submissions append; nothing deduplicates votes.
type VotingService struct {
	votes      ports.VoteRepository
	candidates domain.Candidates
}

func NewVotingService(votes ports.VoteRepository, candidates domain.Candidates) *VotingService {
	return &VotingService{votes: votes, candidates: candidates}
}

// SubmitBallot records one vote per category that carries a non-empty
// choice. A partial ballot (one category only) is valid; an empty ballot
// records nothing. Both inserts of a full ballot commit in one transaction.
func (s *VotingService) SubmitBallot(ctx context.Context, input ports.BallotInput) (*ports.BallotResult, error) {
	now := time.Now().UTC()

	var votes []domain.Vote
	for _, choice := range []struct {
		category  domain.Category
		candidate string
	}{
		{domain.CategoryFemale, input.Female},
		{domain.CategoryMale, input.Male},
	} {
		if choice.candidate == "" {
			continue
		}
		if !s.candidates.Contains(choice.category, choice.candidate) {
			return nil, fmt.Errorf("%w: %q is not a %s candidate",
				domain.ErrUnknownCandidate, choice.candidate, choice.category)
		}
		votes = append(votes, domain.Vote{
			Candidate: choice.candidate,
			Category:  choice.category,
			CreatedAt: now,
		})
	}

	if len(votes) > 0 {
		if err := s.votes.RecordBatch(ctx, votes); err != nil {
			return nil, err
		}
	}
	return &ports.BallotResult{Recorded: len(votes)}, nil
}

// Results returns the raw vote lists per category, in insertion order.
// Tallying is left to the caller.
func (s *VotingService) Results(ctx context.Context) (*ports.ResultsOutput, error) {
	female, err := s.votes.ListByCategory(ctx, domain.CategoryFemale)
	if err != nil {
		return nil, err
	}
	male, err := s.votes.ListByCategory(ctx, domain.CategoryMale)
	if err != nil {
		return nil, err
	}
	return &ports.ResultsOutput{Female: female, Male: male}, nil
}

// Candidates returns the configured static candidate lists.
func (s *VotingService) Candidates() domain.Candidates {
	return s.candidates
}
