package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// VoteRepository implements ports.VoteRepository on the votes table.
type VoteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Record(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO votes (candidate, category, created_at) VALUES (?, ?, ?)",
		vote.Candidate, string(vote.Category), vote.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert vote: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert vote id: %w", err)
	}

	recorded := *vote
	recorded.ID = id
	return &recorded, nil
}

// RecordBatch inserts all votes of one ballot inside a single transaction so
// a two-category submission lands both-or-neither.
func (r *VoteRepository) RecordBatch(ctx context.Context, votes []domain.Vote) error {
	if len(votes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ballot tx: %w", err)
	}

	for _, vote := range votes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO votes (candidate, category, created_at) VALUES (?, ?, ?)",
			vote.Candidate, string(vote.Category), vote.CreatedAt.Unix(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert ballot vote: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ballot tx: %w", err)
	}
	return nil
}

func (r *VoteRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, candidate, category, created_at FROM votes WHERE category = ? ORDER BY id",
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return scanVotes(rows)
}

func (r *VoteRepository) ListAll(ctx context.Context) ([]domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, candidate, category, created_at FROM votes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return scanVotes(rows)
}

func scanVotes(rows *sql.Rows) ([]domain.Vote, error) {
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var (
			vote      domain.Vote
			category  string
			createdAt int64
		)
		if err := rows.Scan(&vote.ID, &vote.Candidate, &category, &createdAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		vote.Category = domain.Category(category)
		vote.CreatedAt = unixToTime(createdAt)
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return votes, nil
}
