package memorystore

import (
	"context"
	"sync"

	"realestate-frontend/internal/core/domain"
)

// ConversationStore хранит переписки администратора в памяти процесса.
// Переписка живет, пока жив процесс; это сознательное ограничение
// скриптового ассистента, у которого нет настоящей истории.
type ConversationStore struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*domain.Conversation),
	}
}

func (s *ConversationStore) Get(_ context.Context, userID string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[userID]
	if !ok {
		return nil, nil
	}
	return cloneConversation(conversation), nil
}

func (s *ConversationStore) Save(_ context.Context, conversation *domain.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conversation.UserID] = cloneConversation(conversation)
	return nil
}

func (s *ConversationStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, userID)
	return nil
}

// cloneConversation копирует переписку, чтобы вызывающий код
// не мутировал внутреннее состояние хранилища.
func cloneConversation(c *domain.Conversation) *domain.Conversation {
	clone := *c
	clone.Messages = make([]domain.ChatMessage, len(c.Messages))
	copy(clone.Messages, c.Messages)
	return &clone
}
