package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shubhmangal/backend/internal/domain"
)

// Fixed key names for the session-scoped match cache. The results view
// reads these; everything under a session id expires together.
const (
	sessionKeyPrefix = "chat:session:"
	matchesKeyPrefix = "chat:matches:"
	prefsKeyPrefix   = "chat:prefs:"
)

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore persists questionnaire sessions in redis with a
// shared TTL, so abandoned sessions clean themselves up.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) SaveResults(ctx context.Context, id string, matches []domain.Profile, prefs domain.PreferenceSet) error {
	matchData, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to encode matches: %w", err)
	}
	prefData, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, matchesKeyPrefix+id, matchData, s.ttl)
	pipe.Set(ctx, prefsKeyPrefix+id, prefData, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *redisSessionStore) Results(ctx context.Context, id string) ([]domain.Profile, domain.PreferenceSet, error) {
	var prefs domain.PreferenceSet

	matchData, err := s.client.Get(ctx, matchesKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, prefs, domain.ErrSessionNotFound
		}
		return nil, prefs, err
	}
	var matches []domain.Profile
	if err := json.Unmarshal(matchData, &matches); err != nil {
		return nil, prefs, fmt.Errorf("failed to decode matches: %w", err)
	}

	prefData, err := s.client.Get(ctx, prefsKeyPrefix+id).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, prefs, err
	}
	if len(prefData) > 0 {
		if err := json.Unmarshal(prefData, &prefs); err != nil {
			return nil, prefs, fmt.Errorf("failed to decode preferences: %w", err)
		}
	}
	return matches, prefs, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id, matchesKeyPrefix+id, prefsKeyPrefix+id).Err()
}
