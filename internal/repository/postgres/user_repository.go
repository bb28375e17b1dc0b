package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (uid, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, user.UID, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	var user domain.User
	query := `SELECT uid, email, password_hash, created_at FROM users WHERE uid = $1`
	err := r.db.GetContext(ctx, &user, query, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT uid, email, password_hash, created_at FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
