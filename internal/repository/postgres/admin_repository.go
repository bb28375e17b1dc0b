package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shubhmangal/backend/internal/repository"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE uid = $1)`
	err := r.db.GetContext(ctx, &exists, query, uid)
	return exists, err
}
