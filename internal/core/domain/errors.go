package domain

import (
	"errors"
	"fmt"
)

// Таксономия ошибок, которую видит слой отображения.
// Все ошибки fetch перехватываются на границе компонента; автоматических
// повторов нет нигде - повтор всегда ручное действие пользователя.
var (
	// ErrUnauthenticated - нет или невалидны учетные данные; UI уводит на логин.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrNotFound - запрошенный объект/пользователь отсутствует.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden - роль пользователя не дает доступа к операции.
	ErrForbidden = errors.New("operation not allowed for this role")
)

// HTTPError - не-2xx ответ backend'а; сообщение показывается inline.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// NetworkError - транспортный сбой; UI показывает сообщение с кнопкой Retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError - клиентская проверка обязательных полей до отправки;
// блокирует сабмит и показывается на уровне конкретного поля.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
}
