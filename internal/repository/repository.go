package repository

import (
	"context"

	"github.com/shubhmangal/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUID(ctx context.Context, uid string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	UpdateStatus(ctx context.Context, uid string, status domain.ProfileStatus) error
	UpdatePhoto(ctx context.Context, uid, photoURL, thumbURL string) error
	AddNote(ctx context.Context, uid string, note string) error
	ListAll(ctx context.Context) ([]domain.Profile, error)
	ListByStatus(ctx context.Context, status domain.ProfileStatus, limit int) ([]domain.Profile, error)
}

type InterestRepository interface {
	// Upsert writes the record keyed by its deterministic ID, creating or
	// overwriting as needed.
	Upsert(ctx context.Context, interest *domain.Interest) error
	GetByID(ctx context.Context, id string) (*domain.Interest, error)
	SetStatus(ctx context.Context, id string, status domain.InterestStatus) error
	ListByExpresser(ctx context.Context, uid string) ([]domain.Interest, error)
	ListByTarget(ctx context.Context, uid string) ([]domain.Interest, error)
	ListByStatus(ctx context.Context, status domain.InterestStatus) ([]domain.Interest, error)
	PendingCounts(ctx context.Context) (map[string]int, error)
}

type AdminRepository interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
