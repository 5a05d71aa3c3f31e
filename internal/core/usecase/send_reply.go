package usecase

import (
	"context"
	"strings"
	"time"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// SendReplyUseCase дописывает ответ админа в переписку и сразу
// генерирует следующий сценарный ответ пользователя. Выбор ответа
// детерминирован: номер ответа = число сообщений пользователя
// по модулю длины сценария.
type SendReplyUseCase struct {
	conversations port.ConversationStorePort
	responder     port.MessageResponderPort
}

func NewSendReplyUseCase(conversations port.ConversationStorePort, responder port.MessageResponderPort) *SendReplyUseCase {
	return &SendReplyUseCase{conversations: conversations, responder: responder}
}

func (uc *SendReplyUseCase) Execute(ctx context.Context, userID, text string) (*domain.Conversation, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SendReply",
		"user_id":  userID,
	})

	if strings.TrimSpace(text) == "" {
		return nil, &domain.ValidationError{Field: "message", Message: "reply text must not be empty"}
	}

	conversation, err := uc.conversations.Get(ctx, userID)
	if err != nil {
		ucLogger.Error("Conversation store returned an error", err, nil)
		return nil, err
	}
	if conversation == nil {
		ucLogger.Warn("Reply to a conversation that was never opened", nil)
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	conversation.Messages = append(conversation.Messages, domain.ChatMessage{
		ID:         len(conversation.Messages) + 1,
		SenderID:   domain.AdminSenderID,
		ReceiverID: userID,
		Message:    text,
		Timestamp:  now,
	})

	scripted := uc.responder.NextReply(conversation.UserRole, conversation.UserReplyCount())
	conversation.Messages = append(conversation.Messages, domain.ChatMessage{
		ID:         len(conversation.Messages) + 1,
		SenderID:   userID,
		ReceiverID: domain.AdminSenderID,
		Message:    scripted,
		Timestamp:  now.Add(time.Second),
	})

	if err := uc.conversations.Save(ctx, conversation); err != nil {
		ucLogger.Error("Failed to save conversation", err, nil)
		return nil, err
	}

	ucLogger.Info("Reply sent", port.Fields{"messages": len(conversation.Messages)})
	return conversation, nil
}
