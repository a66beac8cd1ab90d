package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionState is the ephemeral per-user UI state: the roster being
// assembled on the home screen and the game currently open. The scoring
// core never reads it; identifiers always travel as explicit arguments.
type SessionState struct {
	PendingRoster []string `json:"pending_roster"`
	CurrentGameID uint     `json:"current_game_id"`
}

// SessionService keeps per-user session state in Redis as JSON blobs
// with a sliding TTL.
type SessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionService(client *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{redis: client, ttl: ttl}
}

func sessionKey(username string) string {
	return "session:" + username
}

// Get returns the stored state, or a zero state when none exists.
func (s *SessionService) Get(ctx context.Context, username string) (*SessionState, error) {
	data, err := s.redis.Get(ctx, sessionKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &SessionState{}, nil
		}
		return nil, err
	}

	var state SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &state, nil
}

func (s *SessionService) save(ctx context.Context, username string, state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	return s.redis.Set(ctx, sessionKey(username), data, s.ttl).Err()
}

// AddPendingPlayer queues a name for the next game. Adding a name that
// is already queued is a no-op.
func (s *SessionService) AddPendingPlayer(ctx context.Context, username, name string) (*SessionState, error) {
	state, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, existing := range state.PendingRoster {
		if existing == name {
			return state, nil
		}
	}
	state.PendingRoster = append(state.PendingRoster, name)

	if err := s.save(ctx, username, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ClearRoster empties the queued roster, typically after a game was
// started from it.
func (s *SessionService) ClearRoster(ctx context.Context, username string) error {
	state, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	state.PendingRoster = nil
	return s.save(ctx, username, state)
}

// SetCurrentGame points the session at the game the user has open.
func (s *SessionService) SetCurrentGame(ctx context.Context, username string, gameID uint) error {
	state, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	state.CurrentGameID = gameID
	return s.save(ctx, username, state)
}
