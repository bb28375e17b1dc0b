package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shubhmangal/backend/internal/config"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/infrastructure/storage"
	"github.com/shubhmangal/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// mobileRegex matches 10-digit Nepali mobile numbers (98/97/96 prefix).
var mobileRegex = regexp.MustCompile(`^9[6-9]\d{8}$`)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	adminRepo   repository.AdminRepository
	photoStore  storage.PhotoStore
	denylist    TokenDenylist
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	adminRepo repository.AdminRepository,
	photoStore storage.PhotoStore,
	denylist TokenDenylist,
	cfg *config.JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		adminRepo:   adminRepo,
		photoStore:  photoStore,
		denylist:    denylist,
		jwtSecret:   []byte(cfg.Secret),
		tokenExpiry: time.Duration(cfg.ExpiryMin) * time.Minute,
	}
}

// RegisterRequest carries the signup form. The photo arrives separately as
// a multipart file.
type RegisterRequest struct {
	Email          string   `form:"email" json:"email" binding:"required,email"`
	Password       string   `form:"password" json:"password" binding:"required,min=6"`
	FirstName      string   `form:"first_name" json:"first_name" binding:"required"`
	MiddleName     string   `form:"middle_name" json:"middle_name"`
	LastName       string   `form:"last_name" json:"last_name" binding:"required"`
	Age            *int     `form:"age" json:"age" binding:"omitempty,min=18,max=99"`
	Gender         string   `form:"gender" json:"gender" binding:"omitempty,oneof=Male Female"`
	Location       string   `form:"location" json:"location"`
	DetailLocation string   `form:"detail_location" json:"detail_location"`
	Mobile         string   `form:"mobile" json:"mobile"`
	Hobbies        []string `form:"hobbies" json:"hobbies"`
	MustHave       string   `form:"must_have" json:"must_have"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsAdmin   bool         `json:"is_admin"`
}

// Claims are the JWT claims issued on login.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// ValidateMobile checks the Nepali mobile format, ignoring spaces. An empty
// mobile is allowed; the field is optional at signup.
func ValidateMobile(mobile string) error {
	stripped := strings.ReplaceAll(mobile, " ", "")
	if stripped == "" {
		return nil
	}
	if !mobileRegex.MatchString(stripped) {
		return domain.ErrInvalidMobile
	}
	return nil
}

// Register creates the account and its pending profile. A failed photo
// upload does not abort registration; the profile proceeds with an empty
// photo reference and the account creation is not rolled back.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest, photo io.Reader) (*AuthResult, error) {
	if err := ValidateMobile(req.Mobile); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UID:          uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	var photoURL, thumbURL string
	if photo != nil {
		photoURL, thumbURL, err = uc.photoStore.Save(photo)
		if err != nil {
			log.Printf("photo upload failed for %s, continuing without photo: %v", user.UID, err)
			photoURL, thumbURL = "", ""
		}
	}

	gender := req.Gender
	if gender == "" {
		gender = "Male"
	}

	profile := &domain.Profile{
		UID:            user.UID,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		FullName:       domain.JoinFullName(req.FirstName, req.MiddleName, req.LastName),
		Email:          req.Email,
		Mobile:         strings.ReplaceAll(req.Mobile, " ", ""),
		Age:            req.Age,
		Gender:         gender,
		Location:       req.Location,
		DetailLocation: req.DetailLocation,
		Hobbies:        req.Hobbies,
		MustHave:       req.MustHave,
		Intercaste:     "No",
		PhotoURL:       photoURL,
		PhotoThumbURL:  thumbURL,
		Status:         domain.StatusPending,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return uc.issueToken(ctx, user)
}

// Login verifies credentials and issues a JWT.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.issueToken(ctx, user)
}

func (uc *AuthUseCase) issueToken(ctx context.Context, user *domain.User) (*AuthResult, error) {
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, user.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin status: %w", err)
	}

	expiresAt := time.Now().Add(uc.tokenExpiry)
	claims := Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsAdmin:   isAdmin,
	}, nil
}

// ValidateToken parses and verifies a token, rejecting denylisted ones.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	if uc.denylist != nil {
		revoked, err := uc.denylist.Contains(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("failed to check token denylist: %w", err)
		}
		if revoked {
			return nil, errors.New("token revoked")
		}
	}
	return claims, nil
}

// Logout denylists the token until its natural expiry.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := uc.ValidateToken(ctx, token)
	if err != nil {
		return err
	}
	if uc.denylist == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return uc.denylist.Add(ctx, token, ttl)
}

// Me returns the account and its profile.
func (uc *AuthUseCase) Me(ctx context.Context, uid string) (*domain.User, *domain.Profile, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}
