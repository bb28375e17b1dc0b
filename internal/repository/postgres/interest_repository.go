package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/repository"
)

type interestRepository struct {
	db *sqlx.DB
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

const interestColumns = `
	id, expresser_uid, target_uid, status,
	created_at, last_viewed_at, accepted_at, rejected_at
`

func (r *interestRepository) Upsert(ctx context.Context, interest *domain.Interest) error {
	// Keyed by the deterministic pair ID: re-expressing interest lands on
	// the same row instead of creating a duplicate.
	query := `
		INSERT INTO interests (id, expresser_uid, target_uid, status, created_at, last_viewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, last_viewed_at = EXCLUDED.last_viewed_at
	`
	_, err := r.db.ExecContext(
		ctx, query,
		interest.ID, interest.ExpresserUID, interest.TargetUID,
		interest.Status, interest.CreatedAt, interest.LastViewedAt,
	)
	return err
}

func (r *interestRepository) GetByID(ctx context.Context, id string) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT ` + interestColumns + ` FROM interests WHERE id = $1`
	err := r.db.GetContext(ctx, &interest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) SetStatus(ctx context.Context, id string, status domain.InterestStatus) error {
	var query string
	switch status {
	case domain.InterestAccepted:
		query = `UPDATE interests SET status = $1, accepted_at = CURRENT_TIMESTAMP WHERE id = $2`
	case domain.InterestRejected:
		query = `UPDATE interests SET status = $1, rejected_at = CURRENT_TIMESTAMP WHERE id = $2`
	default:
		query = `UPDATE interests SET status = $1 WHERE id = $2`
	}

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInterestNotFound
	}
	return nil
}

func (r *interestRepository) ListByExpresser(ctx context.Context, uid string) ([]domain.Interest, error) {
	var interests []domain.Interest
	query := `
		SELECT ` + interestColumns + ` FROM interests
		WHERE expresser_uid = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &interests, query, uid)
	return interests, err
}

func (r *interestRepository) ListByTarget(ctx context.Context, uid string) ([]domain.Interest, error) {
	var interests []domain.Interest
	query := `
		SELECT ` + interestColumns + ` FROM interests
		WHERE target_uid = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &interests, query, uid)
	return interests, err
}

func (r *interestRepository) ListByStatus(ctx context.Context, status domain.InterestStatus) ([]domain.Interest, error) {
	var interests []domain.Interest
	query := `
		SELECT ` + interestColumns + ` FROM interests
		WHERE status = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &interests, query, status)
	return interests, err
}

func (r *interestRepository) PendingCounts(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT target_uid, COUNT(*) AS n FROM interests
		WHERE status = $1
		GROUP BY target_uid
	`
	rows, err := r.db.QueryContext(ctx, query, domain.InterestInterested)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var uid string
		var n int
		if err := rows.Scan(&uid, &n); err != nil {
			return nil, err
		}
		counts[uid] = n
	}
	return counts, rows.Err()
}
