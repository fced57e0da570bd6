package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/uniforum/internal/db"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
	"github.com/kaan/uniforum/internal/pkg/dberrors"
)

// UpvoteRepository handles database operations for upvotes and the
// reputation updates tied to them.
type UpvoteRepository struct {
	db *pgxpool.Pool
}

// NewUpvoteRepository creates a new upvote repository
func NewUpvoteRepository(db *pgxpool.Pool) *UpvoteRepository {
	return &UpvoteRepository{
		db: db,
	}
}

// Cast records an upvote, credits the answering faculty's reputation
// and returns the answer's new tally, all in a single transaction. The
// count is read inside the same transaction as the insert, so the
// returned tally always includes this vote. A duplicate (answer, user)
// pair maps to apperrors.ErrAlreadyVoted: the unique constraint
// decides, so two racing requests from the same user cannot
// double-count.
func (r *UpvoteRepository) Cast(ctx context.Context, answerID, userID int64, reputationDelta int) (int, error) {
	var count int
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSQL := `
			INSERT INTO upvotes (answer_id, user_id)
			VALUES ($1, $2)
		`

		if _, err := tx.Exec(ctx, insertSQL, answerID, userID); err != nil {
			return err
		}

		updateSQL := `
			UPDATE users
			SET reputation_points = reputation_points + $1
			WHERE id = (SELECT faculty_id FROM answers WHERE id = $2)
		`

		cmdTag, err := tx.Exec(ctx, updateSQL, reputationDelta, answerID)
		if err != nil {
			return fmt.Errorf("error updating reputation: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrAnswerNotFound
		}

		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM upvotes WHERE answer_id = $1`, answerID).Scan(&count); err != nil {
			return fmt.Errorf("error counting upvotes: %w", err)
		}

		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "upvotes_answer_user_key") {
			return 0, apperrors.ErrAlreadyVoted
		}
		return 0, err
	}

	return count, nil
}

// Exists reports whether the user has already upvoted the answer
func (r *UpvoteRepository) Exists(ctx context.Context, answerID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM upvotes WHERE answer_id = $1 AND user_id = $2)`,
		answerID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking upvote existence: %w", err)
	}

	return exists, nil
}

