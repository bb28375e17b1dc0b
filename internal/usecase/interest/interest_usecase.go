package interest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/repository"
)

// InterestUseCase drives the per-pair state machine:
// NONE → INTERESTED → {ACCEPTED | REJECTED}. Accept and reject overwrite
// the status regardless of the current state, exactly one record exists per
// ordered pair, and re-expression revives a rejected record (see Express).
type InterestUseCase struct {
	interestRepo repository.InterestRepository
	profileRepo  repository.ProfileRepository
	adminRepo    repository.AdminRepository
	countCache   CountCache
}

func NewInterestUseCase(
	interestRepo repository.InterestRepository,
	profileRepo repository.ProfileRepository,
	adminRepo repository.AdminRepository,
	countCache CountCache,
) *InterestUseCase {
	return &InterestUseCase{
		interestRepo: interestRepo,
		profileRepo:  profileRepo,
		adminRepo:    adminRepo,
		countCache:   countCache,
	}
}

// UserInterests partitions a user's records into sent and received. The
// actionable received list only carries records still in interested state.
type UserInterests struct {
	Sent     []domain.Interest          `json:"sent"`
	Received []domain.Interest          `json:"received"`
	Profiles map[string]*domain.Profile `json:"profiles"`
}

// Express is an idempotent create-or-refresh for the ordered pair. A fresh
// pair gets a new interested record; an existing record has its last-viewed
// timestamp refreshed and its status forced back to interested — including
// a previously rejected one, which is silently revived. That revival
// mirrors the long-standing behavior match counts depend on.
func (uc *InterestUseCase) Express(ctx context.Context, expresserUID, targetUID string) (*domain.Interest, error) {
	if expresserUID == targetUID {
		return nil, domain.ErrSelfInterest
	}
	isAdmin, err := uc.adminRepo.IsAdmin(ctx, expresserUID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin status: %w", err)
	}
	if isAdmin {
		return nil, domain.ErrAdminInterest
	}

	id := domain.InterestID(expresserUID, targetUID)
	now := time.Now()

	interest, err := uc.interestRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrInterestNotFound) {
		return nil, err
	}
	if interest == nil {
		interest = &domain.Interest{
			ID:           id,
			ExpresserUID: expresserUID,
			TargetUID:    targetUID,
			CreatedAt:    now,
		}
	}
	interest.Status = domain.InterestInterested
	interest.LastViewedAt = now

	if err := uc.interestRepo.Upsert(ctx, interest); err != nil {
		return nil, fmt.Errorf("failed to save interest: %w", err)
	}
	return interest, nil
}

// Check looks up the record for the ordered pair; absence is not an error.
func (uc *InterestUseCase) Check(ctx context.Context, expresserUID, targetUID string) (*domain.Interest, bool, error) {
	interest, err := uc.interestRepo.GetByID(ctx, domain.InterestID(expresserUID, targetUID))
	if err != nil {
		if errors.Is(err, domain.ErrInterestNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return interest, true, nil
}

// Accept marks the record accepted. Only the record's target may respond,
// but the transition itself is unconditional: an already rejected record
// can still be accepted.
func (uc *InterestUseCase) Accept(ctx context.Context, id, callerUID string) error {
	return uc.respond(ctx, id, callerUID, domain.InterestAccepted)
}

// Reject marks the record rejected under the same rules as Accept.
func (uc *InterestUseCase) Reject(ctx context.Context, id, callerUID string) error {
	return uc.respond(ctx, id, callerUID, domain.InterestRejected)
}

func (uc *InterestUseCase) respond(ctx context.Context, id, callerUID string, status domain.InterestStatus) error {
	interest, err := uc.interestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if interest.TargetUID != callerUID {
		return domain.ErrNotTarget
	}
	return uc.interestRepo.SetStatus(ctx, id, status)
}

// ListForUser returns the sent and received partitions with resolved
// profiles for both sides. Received records are narrowed to interested
// status, the only ones the recipient can still act on; profiles that fail
// to resolve are skipped rather than failing the listing.
func (uc *InterestUseCase) ListForUser(ctx context.Context, uid string) (*UserInterests, error) {
	sent, err := uc.interestRepo.ListByExpresser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent interests: %w", err)
	}
	received, err := uc.interestRepo.ListByTarget(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list received interests: %w", err)
	}

	pending := make([]domain.Interest, 0, len(received))
	for _, in := range received {
		if in.Status == domain.InterestInterested {
			pending = append(pending, in)
		}
	}

	profiles := make(map[string]*domain.Profile)
	for _, in := range append(append([]domain.Interest{}, sent...), pending...) {
		for _, id := range []string{in.ExpresserUID, in.TargetUID} {
			if _, ok := profiles[id]; ok {
				continue
			}
			p, err := uc.profileRepo.GetByUID(ctx, id)
			if err != nil {
				continue
			}
			profiles[id] = p
		}
	}

	return &UserInterests{
		Sent:     sent,
		Received: pending,
		Profiles: profiles,
	}, nil
}

// ListAcceptedPairs resolves every accepted record into a profile pair for
// the admin introduction view. Pairs with an unresolvable profile on either
// side are dropped.
func (uc *InterestUseCase) ListAcceptedPairs(ctx context.Context) ([]domain.AcceptedPair, error) {
	accepted, err := uc.interestRepo.ListByStatus(ctx, domain.InterestAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted interests: %w", err)
	}

	pairs := make([]domain.AcceptedPair, 0, len(accepted))
	for _, in := range accepted {
		expresser, err := uc.profileRepo.GetByUID(ctx, in.ExpresserUID)
		if err != nil {
			continue
		}
		target, err := uc.profileRepo.GetByUID(ctx, in.TargetUID)
		if err != nil {
			continue
		}
		pairs = append(pairs, domain.AcceptedPair{
			InterestID: in.ID,
			AcceptedAt: in.AcceptedAt,
			Expresser:  expresser,
			Target:     target,
		})
	}
	return pairs, nil
}

// PendingCount reads the cached received-interest count for a user, falling
// back to a direct count on a cache miss.
func (uc *InterestUseCase) PendingCount(ctx context.Context, uid string) (int, error) {
	if uc.countCache != nil {
		if n, ok, err := uc.countCache.Get(ctx, uid); err == nil && ok {
			return n, nil
		}
	}

	received, err := uc.interestRepo.ListByTarget(ctx, uid)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, in := range received {
		if in.Status == domain.InterestInterested {
			n++
		}
	}
	return n, nil
}
