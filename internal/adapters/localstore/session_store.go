package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Ключ сессии в долговременном хранилище.
const sessionKey = "session"

// SessionStore хранит тройку token/username/role поверх key-value порта.
type SessionStore struct {
	kv port.KeyValueStorePort
}

func NewSessionStore(kv port.KeyValueStorePort) (*SessionStore, error) {
	if kv == nil {
		return nil, fmt.Errorf("key-value store cannot be nil")
	}
	return &SessionStore{kv: kv}, nil
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(sessionRecord{
		Token:    session.Token,
		Username: session.Username,
		Role:     session.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session from storage: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse stored session: %w", err)
	}
	return &domain.Session{
		Token:    record.Token,
		Username: record.Username,
		Role:     record.Role,
	}, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Clear(ctx, sessionKey)
}
