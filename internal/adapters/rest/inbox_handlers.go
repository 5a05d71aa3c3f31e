package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/port/usecases_port"
)

type InboxHandler struct {
	openUseCase  usecases_port.OpenConversationUseCasePort
	replyUseCase usecases_port.SendReplyUseCasePort
}

func NewInboxHandler(
	openUseCase usecases_port.OpenConversationUseCasePort,
	replyUseCase usecases_port.SendReplyUseCasePort,
) *InboxHandler {
	return &InboxHandler{
		openUseCase:  openUseCase,
		replyUseCase: replyUseCase,
	}
}

// Open возвращает переписку с пользователем, создавая ее при первом
// обращении. Роль нужна для выбора сценария и передается query-параметром.
func (h *InboxHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	role := r.URL.Query().Get("role")

	conversation, err := h.openUseCase.Execute(r.Context(), userID, role)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, conversationToPayload(conversation))
}

// Reply дописывает сообщение админа и сценарный ответ пользователя.
func (h *InboxHandler) Reply(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conversation, err := h.replyUseCase.Execute(r.Context(), userID, payload.Message)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, conversationToPayload(conversation))
}
