package auth

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shubhmangal/backend/internal/config"
	"github.com/shubhmangal/backend/internal/domain"
)

type fakeUserRepo struct {
	byUID   map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUID:   make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	r.byUID[u.UID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByUID(_ context.Context, uid string) (*domain.User, error) {
	u, ok := r.byUID[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.profiles[p.UID] = p
	return nil
}

func (r *fakeProfileRepo) GetByUID(_ context.Context, uid string) (*domain.Profile, error) {
	p, ok := r.profiles[uid]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	r.profiles[p.UID] = p
	return nil
}

func (r *fakeProfileRepo) UpdateStatus(_ context.Context, uid string, status domain.ProfileStatus) error {
	p, ok := r.profiles[uid]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeProfileRepo) UpdatePhoto(_ context.Context, uid, photoURL, thumbURL string) error {
	p, ok := r.profiles[uid]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.PhotoURL, p.PhotoThumbURL = photoURL, thumbURL
	return nil
}

func (r *fakeProfileRepo) AddNote(_ context.Context, uid string, note string) error {
	p, ok := r.profiles[uid]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Notes = append(p.Notes, domain.ProfileNote{Text: note})
	return nil
}

func (r *fakeProfileRepo) ListAll(_ context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) ListByStatus(_ context.Context, status domain.ProfileStatus, limit int) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.Status == status && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeAdminRepo struct {
	admins map[string]bool
}

func (r *fakeAdminRepo) IsAdmin(_ context.Context, uid string) (bool, error) {
	return r.admins[uid], nil
}

type fakePhotoStore struct {
	err   error
	saves int
}

func (s *fakePhotoStore) Save(_ io.Reader) (string, string, error) {
	s.saves++
	if s.err != nil {
		return "", "", s.err
	}
	return "/uploads/full.jpg", "/uploads/thumb.jpg", nil
}

type memDenylist struct {
	revoked map[string]bool
}

func (d *memDenylist) Add(_ context.Context, token string, _ time.Duration) error {
	if d.revoked == nil {
		d.revoked = make(map[string]bool)
	}
	d.revoked[token] = true
	return nil
}

func (d *memDenylist) Contains(_ context.Context, token string) (bool, error) {
	return d.revoked[token], nil
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:    "0123456789abcdef0123456789abcdef",
		ExpiryMin: 60,
	}
}

func newTestUseCase(store *fakePhotoStore) (*AuthUseCase, *fakeUserRepo, *fakeProfileRepo) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	uc := NewAuthUseCase(users, profiles, &fakeAdminRepo{}, store, &memDenylist{}, testJWTConfig())
	return uc, users, profiles
}

func validRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:     "sita@example.com",
		Password:  "secret123",
		FirstName: "Sita",
		LastName:  "Sharma",
	}
}

func TestValidateMobile(t *testing.T) {
	cases := []struct {
		mobile string
		ok     bool
	}{
		{"", true},
		{"9841234567", true},
		{"98 4123 4567", true},
		{"9641234567", true},
		{"9941234567", false},
		{"984123456", false},
		{"98412345678", false},
		{"1234567890", false},
		{"98412345ab", false},
	}
	for _, tc := range cases {
		err := ValidateMobile(tc.mobile)
		if tc.ok && err != nil {
			t.Errorf("ValidateMobile(%q) unexpected error %v", tc.mobile, err)
		}
		if !tc.ok && !errors.Is(err, domain.ErrInvalidMobile) {
			t.Errorf("ValidateMobile(%q) expected invalid-mobile error, got %v", tc.mobile, err)
		}
	}
}

func TestRegisterCreatesPendingProfile(t *testing.T) {
	uc, users, profiles := newTestUseCase(&fakePhotoStore{})
	req := validRequest()
	req.Mobile = "98 4123 4567"
	req.MiddleName = "Kumari"

	result, err := uc.Register(context.Background(), req, strings.NewReader("img"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}

	user, err := users.GetByEmail(context.Background(), req.Email)
	if err != nil {
		t.Fatalf("account missing: %v", err)
	}
	if user.PasswordHash == req.Password {
		t.Fatalf("password stored in clear")
	}

	p := profiles.profiles[user.UID]
	if p == nil {
		t.Fatalf("profile missing")
	}
	if p.Status != domain.StatusPending {
		t.Fatalf("new profile must be pending, got %s", p.Status)
	}
	if p.FullName != "Sita Kumari Sharma" {
		t.Fatalf("full name not joined: %q", p.FullName)
	}
	if p.Mobile != "9841234567" {
		t.Fatalf("mobile not normalized: %q", p.Mobile)
	}
	if p.Gender != "Male" {
		t.Fatalf("missing gender must default to Male, got %q", p.Gender)
	}
	if p.PhotoURL == "" || p.PhotoThumbURL == "" {
		t.Fatalf("photo references not saved")
	}
}

func TestRegisterToleratesPhotoFailure(t *testing.T) {
	store := &fakePhotoStore{err: errors.New("disk full")}
	uc, _, profiles := newTestUseCase(store)

	result, err := uc.Register(context.Background(), validRequest(), strings.NewReader("img"))
	if err != nil {
		t.Fatalf("registration must survive photo failure: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("photo store not attempted")
	}
	p := profiles.profiles[result.User.UID]
	if p == nil {
		t.Fatalf("profile missing")
	}
	if p.PhotoURL != "" || p.PhotoThumbURL != "" {
		t.Fatalf("failed upload must leave empty photo references")
	}
}

func TestRegisterRejectsBadMobile(t *testing.T) {
	store := &fakePhotoStore{}
	uc, users, _ := newTestUseCase(store)
	req := validRequest()
	req.Mobile = "1234567890"

	if _, err := uc.Register(context.Background(), req, nil); !errors.Is(err, domain.ErrInvalidMobile) {
		t.Fatalf("expected invalid-mobile error, got %v", err)
	}
	if len(users.byUID) != 0 {
		t.Fatalf("no account may be created on validation failure")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakePhotoStore{})
	ctx := context.Background()

	if _, err := uc.Register(ctx, validRequest(), nil); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := uc.Register(ctx, validRequest(), nil); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email-taken error, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakePhotoStore{})
	ctx := context.Background()

	if _, err := uc.Register(ctx, validRequest(), nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := uc.Login(ctx, "sita@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := uc.ValidateToken(ctx, result.Token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.Subject != result.User.UID {
		t.Fatalf("token subject %q does not match user %q", claims.Subject, result.User.UID)
	}
	if claims.IsAdmin {
		t.Fatalf("regular user must not carry the admin claim")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakePhotoStore{})
	ctx := context.Background()

	if _, err := uc.Register(ctx, validRequest(), nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := uc.Login(ctx, "sita@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected invalid-credentials, got %v", err)
	}
	// An unknown email gets the same error as a wrong password.
	if _, err := uc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected invalid-credentials, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakePhotoStore{})
	ctx := context.Background()

	result, err := uc.Register(ctx, validRequest(), nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := uc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := uc.ValidateToken(ctx, result.Token); err == nil {
		t.Fatalf("revoked token must not validate")
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakePhotoStore{})
	ctx := context.Background()

	result, err := uc.Register(ctx, validRequest(), nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	other := NewAuthUseCase(newFakeUserRepo(), newFakeProfileRepo(), &fakeAdminRepo{}, &fakePhotoStore{}, &memDenylist{}, &config.JWTConfig{
		Secret:    "ffffffffffffffffffffffffffffffff",
		ExpiryMin: 60,
	})
	if _, err := other.ValidateToken(ctx, result.Token); err == nil {
		t.Fatalf("token signed with a different secret must not validate")
	}
}

func TestAdminClaim(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	admins := &fakeAdminRepo{admins: map[string]bool{}}
	uc := NewAuthUseCase(users, profiles, admins, &fakePhotoStore{}, &memDenylist{}, testJWTConfig())
	ctx := context.Background()

	result, err := uc.Register(ctx, validRequest(), nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	admins.admins[result.User.UID] = true
	result, err = uc.Login(ctx, "sita@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.IsAdmin {
		t.Fatalf("expected admin flag on result")
	}
	claims, err := uc.ValidateToken(ctx, result.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected admin claim in token")
	}
}
