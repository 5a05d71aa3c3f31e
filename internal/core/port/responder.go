package port

// MessageResponderPort - интерфейс отправки сообщений в переписке.
// Сейчас за ним стоит детерминированный сценарный симулятор; настоящий
// чат можно подставить позже, не трогая вызывающий код.
type MessageResponderPort interface {
	// InitialQuery возвращает первое сообщение пользователя данной роли.
	InitialQuery(role string) string

	// NextReply возвращает очередной ответ пользователя. Выбор
	// детерминирован и зависит только от роли и числа уже отправленных
	// пользователем сообщений.
	NextReply(role string, userReplyCount int) string
}
