package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Ключ избранного в долговременном хранилище.
const wishlistKey = "wishlist"

// WishlistStore реализует WishlistStorePort поверх key-value порта.
// Хранилище читается один раз при первом обращении; каждая мутация
// синхронно сохраняет полную последовательность до возврата, поэтому
// представление в памяти всегда равно сохраненному.
type WishlistStore struct {
	kv port.KeyValueStorePort

	mu     sync.Mutex
	items  []domain.PropertyRecord
	loaded bool
}

func NewWishlistStore(kv port.KeyValueStorePort) (*WishlistStore, error) {
	if kv == nil {
		return nil, fmt.Errorf("key-value store cannot be nil")
	}
	return &WishlistStore{kv: kv}, nil
}

func (s *WishlistStore) List(ctx context.Context) ([]domain.PropertyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

func (s *WishlistStore) Contains(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	return s.indexOf(id) >= 0, nil
}

// Toggle удаляет объект, если он уже в избранном, иначе дописывает в конец.
func (s *WishlistStore) Toggle(ctx context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	var updated []domain.PropertyRecord
	if i := s.indexOf(property.ID); i >= 0 {
		updated = make([]domain.PropertyRecord, 0, len(s.items)-1)
		updated = append(updated, s.items[:i]...)
		updated = append(updated, s.items[i+1:]...)
	} else {
		updated = make([]domain.PropertyRecord, 0, len(s.items)+1)
		updated = append(updated, s.items...)
		updated = append(updated, property)
	}

	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	s.items = updated
	return s.snapshot(), nil
}

func (s *WishlistStore) Remove(ctx context.Context, id int64) ([]domain.PropertyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	updated := make([]domain.PropertyRecord, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			updated = append(updated, item)
		}
	}

	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}
	s.items = updated
	return s.snapshot(), nil
}

// ensureLoaded читает хранилище при первом обращении.
// Пустое или отсутствующее значение - пустое избранное, не ошибка.
func (s *WishlistStore) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, err := s.kv.Get(ctx, wishlistKey)
	if err != nil {
		return fmt.Errorf("failed to read wishlist from storage: %w", err)
	}

	if len(raw) > 0 {
		var stored []storedProperty
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("failed to parse stored wishlist: %w", err)
		}
		s.items = make([]domain.PropertyRecord, len(stored))
		for i, sp := range stored {
			s.items[i] = fromStored(sp)
		}
	}

	s.loaded = true
	contextkeys.LoggerFromContext(ctx).Debug("Wishlist loaded from storage", port.Fields{
		"component": "WishlistStore",
		"items":     len(s.items),
	})
	return nil
}

// persist пишет полную последовательность; память обновляется
// только после успешной записи.
func (s *WishlistStore) persist(ctx context.Context, items []domain.PropertyRecord) error {
	stored := make([]storedProperty, len(items))
	for i, item := range items {
		stored[i] = toStored(item)
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.kv.Set(ctx, wishlistKey, raw); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

func (s *WishlistStore) indexOf(id int64) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *WishlistStore) snapshot() []domain.PropertyRecord {
	out := make([]domain.PropertyRecord, len(s.items))
	copy(out, s.items)
	return out
}
