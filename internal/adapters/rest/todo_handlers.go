package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/port/usecases_port"
)

type TodoHandler struct {
	todosUseCase usecases_port.ManageTodosUseCasePort
}

func NewTodoHandler(todosUseCase usecases_port.ManageTodosUseCasePort) *TodoHandler {
	return &TodoHandler{todosUseCase: todosUseCase}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.todosUseCase.List(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	payload := make([]todoPayload, len(items))
	for i, item := range items {
		payload[i] = todoPayload{ID: item.ID, Task: item.Task, Date: item.Date}
	}
	RespondWithJSON(w, http.StatusOK, payload)
}

// Add создает заметку. Пустой текст и пустая дата отклоняются до сохранения.
func (h *TodoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Task string `json:"task"`
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Task) == "" || payload.Date == "" {
		WriteJSONError(w, http.StatusBadRequest, "task and date are required")
		return
	}

	item, err := h.todosUseCase.Add(r.Context(), payload.Task, payload.Date)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, todoPayload{ID: item.ID, Task: item.Task, Date: item.Date})
}

func (h *TodoHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.todosUseCase.Remove(r.Context(), chi.URLParam(r, "todoID")); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
