package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// ConversationStorePort - хранилище состояния переписок админки.
type ConversationStorePort interface {
	// Get возвращает nil без ошибки, если переписки с пользователем нет.
	Get(ctx context.Context, userID string) (*domain.Conversation, error)
	Save(ctx context.Context, conversation *domain.Conversation) error
	Delete(ctx context.Context, userID string) error
}
