package profile

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/infrastructure/storage"
	"github.com/shubhmangal/backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	photoStore  storage.PhotoStore
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, photoStore storage.PhotoStore) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		photoStore:  photoStore,
	}
}

// UpdateProfileRequest carries owner-editable fields. Status, caste,
// bihar/bahi and intercaste are admin-only and deliberately absent.
type UpdateProfileRequest struct {
	FirstName      *string   `json:"first_name" binding:"omitempty,min=1"`
	MiddleName     *string   `json:"middle_name"`
	LastName       *string   `json:"last_name" binding:"omitempty,min=1"`
	Age            *int      `json:"age" binding:"omitempty,min=18,max=99"`
	Gender         *string   `json:"gender" binding:"omitempty,oneof=Male Female"`
	Location       *string   `json:"location"`
	DetailLocation *string   `json:"detail_location"`
	Mobile         *string   `json:"mobile" binding:"omitempty,npmobile"`
	Hobbies        *[]string `json:"hobbies"`
	MustHave       *string   `json:"must_have"`
}

// AdminUpdateRequest extends the owner field set with the fields only
// admins fill in after vetting a profile.
type AdminUpdateRequest struct {
	UpdateProfileRequest
	Caste      *string `json:"caste"`
	BiharBahi  *string `json:"bihar_bahi"`
	Intercaste *string `json:"intercaste" binding:"omitempty,oneof=Yes No"`
}

// Stats is the admin dashboard profile breakdown.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Married  int `json:"married"`
}

func (uc *ProfileUseCase) Get(ctx context.Context, uid string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUID(ctx, uid)
}

// Update applies owner edits. Owners may only edit while the profile is
// still pending or was rejected; once approved (or married) the record is
// locked and changes go through the admin path. The full name is re-derived
// when any name part changes, matching registration.
func (uc *ProfileUseCase) Update(ctx context.Context, uid string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile.Status != domain.StatusPending && profile.Status != domain.StatusRejected {
		return nil, domain.ErrProfileLocked
	}

	applyOwnerFields(profile, req)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// AdminUpdate applies an admin edit at any status, including the
// vetting-only fields left empty at signup.
func (uc *ProfileUseCase) AdminUpdate(ctx context.Context, uid string, req *AdminUpdateRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	applyOwnerFields(profile, &req.UpdateProfileRequest)
	if req.Caste != nil {
		profile.Caste = *req.Caste
	}
	if req.BiharBahi != nil {
		profile.BiharBahi = *req.BiharBahi
	}
	if req.Intercaste != nil {
		profile.Intercaste = *req.Intercaste
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func applyOwnerFields(profile *domain.Profile, req *UpdateProfileRequest) {
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		profile.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	profile.FullName = domain.JoinFullName(profile.FirstName, profile.MiddleName, profile.LastName)
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.DetailLocation != nil {
		profile.DetailLocation = *req.DetailLocation
	}
	if req.Mobile != nil {
		profile.Mobile = strings.ReplaceAll(*req.Mobile, " ", "")
	}
	if req.Hobbies != nil {
		profile.Hobbies = *req.Hobbies
	}
	if req.MustHave != nil {
		profile.MustHave = *req.MustHave
	}
}

// UpdatePhoto replaces the profile photo with a freshly stored one.
func (uc *ProfileUseCase) UpdatePhoto(ctx context.Context, uid string, photo io.Reader) (*domain.Profile, error) {
	photoURL, thumbURL, err := uc.photoStore.Save(photo)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}
	if err := uc.profileRepo.UpdatePhoto(ctx, uid, photoURL, thumbURL); err != nil {
		return nil, err
	}
	return uc.profileRepo.GetByUID(ctx, uid)
}

// SetStatus is the admin status transition.
func (uc *ProfileUseCase) SetStatus(ctx context.Context, uid string, status domain.ProfileStatus) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	return uc.profileRepo.UpdateStatus(ctx, uid, status)
}

// AddNote appends an admin note; notes are never edited or removed.
func (uc *ProfileUseCase) AddNote(ctx context.Context, uid string, note string) error {
	if strings.TrimSpace(note) == "" {
		return fmt.Errorf("note text is required")
	}
	return uc.profileRepo.AddNote(ctx, uid, note)
}

func (uc *ProfileUseCase) ListAll(ctx context.Context) ([]domain.Profile, error) {
	return uc.profileRepo.ListAll(ctx)
}

// Search filters the full profile list by a case-insensitive substring over
// name, email, mobile and location, optionally restricted to one status.
func (uc *ProfileUseCase) Search(ctx context.Context, term string, status domain.ProfileStatus) ([]domain.Profile, error) {
	profiles, err := uc.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if status != "" && p.Status != status {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func matchesSearch(p domain.Profile, term string) bool {
	for _, field := range []string{p.FullName, p.Email, p.Mobile, p.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (uc *ProfileUseCase) Stats(ctx context.Context) (*Stats, error) {
	profiles, err := uc.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(profiles)}
	for _, p := range profiles {
		switch p.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusApproved:
			stats.Approved++
		case domain.StatusRejected:
			stats.Rejected++
		case domain.StatusMarried:
			stats.Married++
		}
	}
	return stats, nil
}

// ApprovedProfiles returns the newest-first approved snapshot the filter
// engine runs over, with married profiles excluded. A store failure is
// reported so the questionnaire can apologize instead of claiming zero
// matches.
func (uc *ProfileUseCase) ApprovedProfiles(ctx context.Context, limit int) ([]domain.Profile, error) {
	profiles, err := uc.profileRepo.ListByStatus(ctx, domain.StatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved profiles: %w", err)
	}

	out := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Status == domain.StatusMarried {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
