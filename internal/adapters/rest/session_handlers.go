package rest

import (
	"encoding/json"
	"net/http"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// SessionHandler сохраняет и очищает тройку token/username/role.
// Сам логин выполняет платформа; сюда попадает уже выданный токен.
type SessionHandler struct {
	sessions port.SessionStorePort
}

func NewSessionHandler(sessions port.SessionStorePort) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	var payload sessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Token == "" {
		WriteJSONError(w, http.StatusBadRequest, "token is required")
		return
	}

	err := h.sessions.Save(r.Context(), domain.Session{
		Token:    payload.Token,
		Username: payload.Username,
		Role:     payload.Role,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Logout очищает сессию; избранное при этом не трогается.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context()); err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
