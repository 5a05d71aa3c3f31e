package memorystore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"realestate-frontend/internal/core/domain"
)

// TodoStore хранит заметки администратора в памяти процесса.
type TodoStore struct {
	mu    sync.Mutex
	items []domain.TodoItem
}

// NewTodoStore создает хранилище с парой стартовых записей,
// чтобы вкладка не открывалась пустой.
func NewTodoStore() *TodoStore {
	return &TodoStore{
		items: []domain.TodoItem{
			{ID: uuid.NewString(), Task: "Meeting with team", Date: "2025-03-10T10:00"},
			{ID: uuid.NewString(), Task: "Review project updates", Date: "2025-03-12T14:00"},
		},
	}
}

func (s *TodoStore) List(_ context.Context) ([]domain.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.TodoItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *TodoStore) Add(_ context.Context, task, date string) (*domain.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.TodoItem{
		ID:   uuid.NewString(),
		Task: task,
		Date: date,
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *TodoStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
