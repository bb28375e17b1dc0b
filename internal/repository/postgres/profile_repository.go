package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	uid, first_name, middle_name, last_name, full_name, email, mobile,
	age, gender, location, detail_location, hobbies, must_have,
	bihar_bahi, caste, intercaste, photo_url, photo_thumb_url, status,
	created_at, updated_at
`

func scanProfile(row interface{ Scan(...interface{}) error }) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UID, &p.FirstName, &p.MiddleName, &p.LastName, &p.FullName,
		&p.Email, &p.Mobile, &p.Age, &p.Gender, &p.Location,
		&p.DetailLocation, pq.Array(&p.Hobbies), &p.MustHave,
		&p.BiharBahi, &p.Caste, &p.Intercaste, &p.PhotoURL,
		&p.PhotoThumbURL, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			uid, first_name, middle_name, last_name, full_name, email, mobile,
			age, gender, location, detail_location, hobbies, must_have,
			bihar_bahi, caste, intercaste, photo_url, photo_thumb_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UID, profile.FirstName, profile.MiddleName, profile.LastName,
		profile.FullName, profile.Email, profile.Mobile, profile.Age,
		profile.Gender, profile.Location, profile.DetailLocation,
		pq.Array(profile.Hobbies), profile.MustHave, profile.BiharBahi,
		profile.Caste, profile.Intercaste, profile.PhotoURL,
		profile.PhotoThumbURL, profile.Status,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE uid = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	notes, err := r.listNotes(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile notes: %w", err)
	}
	profile.Notes = notes
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = $1, middle_name = $2, last_name = $3, full_name = $4,
		    mobile = $5, age = $6, gender = $7, location = $8,
		    detail_location = $9, hobbies = $10, must_have = $11,
		    bihar_bahi = $12, caste = $13, intercaste = $14,
		    status = $15, updated_at = CURRENT_TIMESTAMP
		WHERE uid = $16
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.FirstName, profile.MiddleName, profile.LastName, profile.FullName,
		profile.Mobile, profile.Age, profile.Gender, profile.Location,
		profile.DetailLocation, pq.Array(profile.Hobbies), profile.MustHave,
		profile.BiharBahi, profile.Caste, profile.Intercaste,
		profile.Status, profile.UID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) UpdateStatus(ctx context.Context, uid string, status domain.ProfileStatus) error {
	query := `
		UPDATE profiles
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE uid = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, uid)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) UpdatePhoto(ctx context.Context, uid, photoURL, thumbURL string) error {
	query := `
		UPDATE profiles
		SET photo_url = $1, photo_thumb_url = $2, updated_at = CURRENT_TIMESTAMP
		WHERE uid = $3
	`
	result, err := r.db.ExecContext(ctx, query, photoURL, thumbURL, uid)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) AddNote(ctx context.Context, uid string, note string) error {
	query := `INSERT INTO profile_notes (profile_uid, note) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, uid, note)
	return err
}

func (r *profileRepository) listNotes(ctx context.Context, uid string) ([]domain.ProfileNote, error) {
	var notes []domain.ProfileNote
	query := `
		SELECT note, created_at FROM profile_notes
		WHERE profile_uid = $1
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &notes, query, uid)
	return notes, err
}

func (r *profileRepository) ListAll(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	return r.queryProfiles(ctx, query)
}

func (r *profileRepository) ListByStatus(ctx context.Context, status domain.ProfileStatus, limit int) ([]domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.queryProfiles(ctx, query, status, limit)
}

func (r *profileRepository) queryProfiles(ctx context.Context, query string, args ...interface{}) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}
