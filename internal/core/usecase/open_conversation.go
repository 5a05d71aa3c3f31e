package usecase

import (
	"context"
	"time"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// OpenConversationUseCase открывает переписку с пользователем.
// Если переписки еще нет, она создается с первым сценарным вопросом
// пользователя; повторное открытие возвращает существующее состояние.
type OpenConversationUseCase struct {
	conversations port.ConversationStorePort
	responder     port.MessageResponderPort
}

func NewOpenConversationUseCase(conversations port.ConversationStorePort, responder port.MessageResponderPort) *OpenConversationUseCase {
	return &OpenConversationUseCase{conversations: conversations, responder: responder}
}

func (uc *OpenConversationUseCase) Execute(ctx context.Context, userID, role string) (*domain.Conversation, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "OpenConversation",
		"user_id":  userID,
		"role":     role,
	})

	existing, err := uc.conversations.Get(ctx, userID)
	if err != nil {
		ucLogger.Error("Conversation store returned an error", err, nil)
		return nil, err
	}
	if existing != nil {
		ucLogger.Debug("Returning existing conversation", port.Fields{"messages": len(existing.Messages)})
		return existing, nil
	}

	conversation := &domain.Conversation{
		UserID:   userID,
		UserRole: role,
		Messages: []domain.ChatMessage{{
			ID:         1,
			SenderID:   userID,
			ReceiverID: domain.AdminSenderID,
			Message:    uc.responder.InitialQuery(role),
			Timestamp:  time.Now(),
		}},
	}

	if err := uc.conversations.Save(ctx, conversation); err != nil {
		ucLogger.Error("Failed to save new conversation", err, nil)
		return nil, err
	}

	ucLogger.Info("Conversation opened", nil)
	return conversation, nil
}
