package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type OpenConversationUseCasePort interface {
	Execute(ctx context.Context, userID, role string) (*domain.Conversation, error)
}

type SendReplyUseCasePort interface {
	Execute(ctx context.Context, userID, text string) (*domain.Conversation, error)
}
