package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/port/usecases_port"
)

type WishlistHandler struct {
	getUseCase    usecases_port.GetWishlistUseCasePort
	toggleUseCase usecases_port.ToggleWishlistUseCasePort
	removeUseCase usecases_port.RemoveFromWishlistUseCasePort
}

func NewWishlistHandler(
	getUseCase usecases_port.GetWishlistUseCasePort,
	toggleUseCase usecases_port.ToggleWishlistUseCasePort,
	removeUseCase usecases_port.RemoveFromWishlistUseCasePort,
) *WishlistHandler {
	return &WishlistHandler{
		getUseCase:    getUseCase,
		toggleUseCase: toggleUseCase,
		removeUseCase: removeUseCase,
	}
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.getUseCase.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, propertiesToPayload(items))
}

// Toggle принимает запись целиком: избранное хранит снимок объявления,
// а не ссылку на него, и не ходит за объектом повторно.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var payload propertyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.ID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "property id is required")
		return
	}

	items, err := h.toggleUseCase.Execute(r.Context(), propertyFromPayload(payload))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, propertiesToPayload(items))
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	items, err := h.removeUseCase.Execute(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, propertiesToPayload(items))
}
