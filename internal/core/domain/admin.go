package domain

import "time"

// User - пользователь платформы в представлении админ-панели.
type User struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// ChatMessage - одно сообщение в симулируемой переписке админа.
type ChatMessage struct {
	ID         int
	SenderID   string
	ReceiverID string
	Message    string
	Timestamp  time.Time
}

// AdminSenderID - идентификатор отправителя для сообщений админа.
const AdminSenderID = "admin"

// Conversation - состояние одной переписки, ключ - пользователь.
type Conversation struct {
	UserID   string
	UserRole string
	Messages []ChatMessage
}

// UserReplyCount считает сообщения, отправленные не админом.
// От этого счетчика зависит выбор следующего сценарного ответа.
func (c *Conversation) UserReplyCount() int {
	n := 0
	for _, m := range c.Messages {
		if m.SenderID != AdminSenderID {
			n++
		}
	}
	return n
}

// TodoItem - запись списка дел админа. Живет только в памяти процесса.
type TodoItem struct {
	ID   string
	Task string
	Date string
}
