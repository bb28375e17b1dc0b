// Package chat implements the guided matchmaking questionnaire: a linear
// state machine with exactly one live question at a time, ending in a
// filter run whose results live only for the session.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/matching"
)

type SessionStatus string

const (
	StatusAsking  SessionStatus = "asking"
	StatusResults SessionStatus = "results"
)

// Message is one transcript entry. The transcript is append-only and
// chronological, alternating bot and user per turn.
type Message struct {
	Sender string    `json:"sender"` // "bot" or "user"
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// Session is the per-questionnaire state, persisted between turns and
// discarded when the session expires or is cancelled.
type Session struct {
	ID         string               `json:"id"`
	UserUID    string               `json:"user_uid,omitempty"`
	Step       int                  `json:"step"`
	Status     SessionStatus        `json:"status"`
	Prefs      domain.PreferenceSet `json:"prefs"`
	Transcript []Message            `json:"transcript"`
	CreatedAt  time.Time            `json:"created_at"`
}

// SessionStore persists questionnaire sessions and their filter results.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	SaveResults(ctx context.Context, id string, matches []domain.Profile, prefs domain.PreferenceSet) error
	Results(ctx context.Context, id string) ([]domain.Profile, domain.PreferenceSet, error)
	Delete(ctx context.Context, id string) error
}

// ProfileSource supplies the approved-profile snapshot the filter runs
// over. A fetch failure is reported so the bot can apologize rather than
// announce zero matches.
type ProfileSource interface {
	ApprovedProfiles(ctx context.Context, limit int) ([]domain.Profile, error)
}

type ChatUseCase struct {
	sessions     SessionStore
	profiles     ProfileSource
	profileLimit int
}

func NewChatUseCase(sessions SessionStore, profiles ProfileSource, profileLimit int) *ChatUseCase {
	return &ChatUseCase{
		sessions:     sessions,
		profiles:     profiles,
		profileLimit: profileLimit,
	}
}

// AnswerRequest is one user turn. Hobbies is only consulted on the
// multi-select step.
type AnswerRequest struct {
	Answer  string   `json:"answer"`
	Hobbies []string `json:"hobbies"`
}

// Turn is what the collector hands back after each exchange.
type Turn struct {
	SessionID  string             `json:"session_id"`
	Messages   []Message          `json:"messages"`
	Question   *matching.Question `json:"question,omitempty"`
	Done       bool               `json:"done"`
	MatchCount *int               `json:"match_count,omitempty"`
}

// Start opens a session and asks the first question.
func (uc *ChatUseCase) Start(ctx context.Context, userUID string) (*Turn, error) {
	s := &Session{
		ID:        uuid.New().String(),
		UserUID:   userUID,
		Status:    StatusAsking,
		CreatedAt: time.Now(),
	}
	s.appendBot("👋 Hi! I will ask a few questions to find good matches for you.")
	s.appendBot(matching.Questions[0].Text)

	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}

	q := matching.Questions[0]
	return &Turn{
		SessionID: s.ID,
		Messages:  s.Transcript,
		Question:  &q,
	}, nil
}

// Answer consumes one user turn. Single-choice questions advance
// immediately; the hobbies step requires at least one selection and fails
// without a transition otherwise. Answering the last question runs the
// filter synchronously and finishes the session.
func (uc *ChatUseCase) Answer(ctx context.Context, sessionID string, req *AnswerRequest) (*Turn, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Status != StatusAsking {
		return nil, domain.ErrSessionFinished
	}

	q := matching.Questions[s.Step]
	if q.Multiple {
		if len(req.Hobbies) == 0 {
			return nil, domain.ErrNoHobbiesSelected
		}
		s.Prefs.Hobbies = req.Hobbies
		s.appendUser(strings.Join(req.Hobbies, ", "))
	} else {
		answer := strings.TrimSpace(req.Answer)
		if answer == "" {
			return nil, fmt.Errorf("answer is required")
		}
		if !q.Allows(answer) {
			return nil, domain.ErrInvalidAnswer
		}
		switch q.ID {
		case "gender":
			s.Prefs.Gender = answer
		case "preferredAge":
			s.Prefs.AgeBand = answer
		case "city":
			s.Prefs.City = answer
		}
		s.appendUser(answer)
	}

	s.Step++
	if s.Step < len(matching.Questions) {
		next := matching.Questions[s.Step]
		s.appendBot(next.Text)
		if err := uc.sessions.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to save chat session: %w", err)
		}
		return &Turn{
			SessionID: s.ID,
			Messages:  s.Transcript,
			Question:  &next,
		}, nil
	}

	return uc.finish(ctx, s)
}

// finish runs the filter over the approved snapshot and caches the result
// list for the rest of the session. A snapshot fetch failure still ends the
// session, with an apology instead of a match count.
func (uc *ChatUseCase) finish(ctx context.Context, s *Session) (*Turn, error) {
	s.appendBot("🔍 Finding matches for you...")

	candidates, err := uc.profiles.ApprovedProfiles(ctx, uc.profileLimit)
	if err != nil {
		s.Status = StatusResults
		s.appendBot("😔 Sorry, something went wrong while searching. Please try again in a moment.")
		if err := uc.sessions.SaveResults(ctx, s.ID, []domain.Profile{}, s.Prefs); err != nil {
			return nil, fmt.Errorf("failed to cache match results: %w", err)
		}
		if err := uc.sessions.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to save chat session: %w", err)
		}
		return &Turn{
			SessionID: s.ID,
			Messages:  s.Transcript,
			Done:      true,
		}, nil
	}
	matches := matching.Filter(candidates, s.Prefs)

	if err := uc.sessions.SaveResults(ctx, s.ID, matches, s.Prefs); err != nil {
		return nil, fmt.Errorf("failed to cache match results: %w", err)
	}

	count := len(matches)
	s.Status = StatusResults
	s.appendBot(fmt.Sprintf("🎉 Found %d potential matches!", count))
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save chat session: %w", err)
	}

	return &Turn{
		SessionID:  s.ID,
		Messages:   s.Transcript,
		Done:       true,
		MatchCount: &count,
	}, nil
}

// Results returns the cached match list and the preference set of a
// finished session.
func (uc *ChatUseCase) Results(ctx context.Context, sessionID string) ([]domain.Profile, domain.PreferenceSet, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.PreferenceSet{}, err
	}
	if s.Status != StatusResults {
		return nil, domain.PreferenceSet{}, domain.ErrSessionNotFound
	}
	return uc.sessions.Results(ctx, sessionID)
}

// Cancel discards the session and anything cached under it. No partial
// state survives a dismissed questionnaire.
func (uc *ChatUseCase) Cancel(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (s *Session) appendBot(text string)  { s.append("bot", text) }
func (s *Session) appendUser(text string) { s.append("user", text) }

func (s *Session) append(sender, text string) {
	s.Transcript = append(s.Transcript, Message{Sender: sender, Text: text, At: time.Now()})
}
