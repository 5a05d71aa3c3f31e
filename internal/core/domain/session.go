package domain

// Session - тройка token/username/role, которую клиент держит
// в долговременном хранилище. Очищается при логауте и при каждом
// старте приложения - защита от "мерцания" устаревшей сессии.
type Session struct {
	Token    string
	Username string
	Role     string
}
