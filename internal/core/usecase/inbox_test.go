package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

type fakeConversationStore struct {
	conversations map[string]*domain.Conversation
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{conversations: make(map[string]*domain.Conversation)}
}

func (f *fakeConversationStore) Get(_ context.Context, userID string) (*domain.Conversation, error) {
	return f.conversations[userID], nil
}

func (f *fakeConversationStore) Save(_ context.Context, c *domain.Conversation) error {
	f.conversations[c.UserID] = c
	return nil
}

func (f *fakeConversationStore) Delete(_ context.Context, userID string) error {
	delete(f.conversations, userID)
	return nil
}

type fakeResponder struct{}

func (fakeResponder) InitialQuery(role string) string { return "initial for " + role }

func (fakeResponder) NextReply(role string, count int) string {
	return []string{"reply-0", "reply-1", "reply-2"}[count%3]
}

func TestOpenConversationCreatesInitialMessage(t *testing.T) {
	store := newFakeConversationStore()
	uc := NewOpenConversationUseCase(store, fakeResponder{})

	conversation, err := uc.Execute(context.Background(), "17", "BUYER")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)

	first := conversation.Messages[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "17", first.SenderID)
	assert.Equal(t, domain.AdminSenderID, first.ReceiverID)
	assert.Equal(t, "initial for BUYER", first.Message)
}

func TestOpenConversationReturnsExisting(t *testing.T) {
	store := newFakeConversationStore()
	uc := NewOpenConversationUseCase(store, fakeResponder{})

	first, err := uc.Execute(context.Background(), "17", "BUYER")
	require.NoError(t, err)

	again, err := uc.Execute(context.Background(), "17", "BUYER")
	require.NoError(t, err)
	assert.Equal(t, len(first.Messages), len(again.Messages))
}

func TestSendReplyAppendsAdminAndScriptedMessages(t *testing.T) {
	store := newFakeConversationStore()
	openUC := NewOpenConversationUseCase(store, fakeResponder{})
	replyUC := NewSendReplyUseCase(store, fakeResponder{})

	_, err := openUC.Execute(context.Background(), "17", "BUYER")
	require.NoError(t, err)

	conversation, err := replyUC.Execute(context.Background(), "17", "Hello!")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 3)

	adminMsg := conversation.Messages[1]
	assert.Equal(t, domain.AdminSenderID, adminMsg.SenderID)
	assert.Equal(t, "Hello!", adminMsg.Message)

	// Первый сценарный ответ после одного сообщения пользователя
	userMsg := conversation.Messages[2]
	assert.Equal(t, "17", userMsg.SenderID)
	assert.Equal(t, "reply-1", userMsg.Message)
	assert.True(t, userMsg.Timestamp.After(adminMsg.Timestamp))
}

// Ответы циклически идут по сценарию с ростом числа сообщений пользователя.
func TestSendReplyCyclesThroughScript(t *testing.T) {
	store := newFakeConversationStore()
	openUC := NewOpenConversationUseCase(store, fakeResponder{})
	replyUC := NewSendReplyUseCase(store, fakeResponder{})

	_, err := openUC.Execute(context.Background(), "17", "BUYER")
	require.NoError(t, err)

	var last *domain.Conversation
	for i := 0; i < 3; i++ {
		last, err = replyUC.Execute(context.Background(), "17", "ping")
		require.NoError(t, err)
	}

	// 1 initial + 3 admin + 3 scripted
	require.Len(t, last.Messages, 7)
	assert.Equal(t, "reply-1", last.Messages[2].Message)
	assert.Equal(t, "reply-2", last.Messages[4].Message)
	assert.Equal(t, "reply-0", last.Messages[6].Message)
}

func TestSendReplyEmptyTextRejected(t *testing.T) {
	store := newFakeConversationStore()
	uc := NewSendReplyUseCase(store, fakeResponder{})

	_, err := uc.Execute(context.Background(), "17", "   ")
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "message", validationErr.Field)
}

func TestSendReplyUnknownConversation(t *testing.T) {
	store := newFakeConversationStore()
	uc := NewSendReplyUseCase(store, fakeResponder{})

	_, err := uc.Execute(context.Background(), "99", "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
