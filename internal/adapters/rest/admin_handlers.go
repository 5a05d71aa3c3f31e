package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/port/usecases_port"
)

type AdminHandler struct {
	getUsersUseCase     usecases_port.GetUsersUseCasePort
	changeRoleUseCase   usecases_port.ChangeUserRoleUseCasePort
	allPropertiesUC     usecases_port.GetAllPropertiesUseCasePort
	updateStatusUseCase usecases_port.UpdatePropertyStatusUseCasePort
	deleteListingUC     usecases_port.DeleteListingUseCasePort
}

func NewAdminHandler(
	getUsersUseCase usecases_port.GetUsersUseCasePort,
	changeRoleUseCase usecases_port.ChangeUserRoleUseCasePort,
	allPropertiesUC usecases_port.GetAllPropertiesUseCasePort,
	updateStatusUseCase usecases_port.UpdatePropertyStatusUseCasePort,
	deleteListingUC usecases_port.DeleteListingUseCasePort,
) *AdminHandler {
	return &AdminHandler{
		getUsersUseCase:     getUsersUseCase,
		changeRoleUseCase:   changeRoleUseCase,
		allPropertiesUC:     allPropertiesUC,
		updateStatusUseCase: updateStatusUseCase,
		deleteListingUC:     deleteListingUC,
	}
}

func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	token := TokenFromContext(r.Context())
	users, err := h.getUsersUseCase.Execute(r.Context(), token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	payload := make([]userPayload, len(users))
	for i, user := range users {
		payload[i] = userPayload{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		}
	}
	RespondWithJSON(w, http.StatusOK, payload)
}

func (h *AdminHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token := TokenFromContext(r.Context())
	if err := h.changeRoleUseCase.Execute(r.Context(), id, payload.Role, token); err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	token := TokenFromContext(r.Context())
	properties, err := h.allPropertiesUC.Execute(r.Context(), token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, propertiesToPayload(properties))
}

func (h *AdminHandler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token := TokenFromContext(r.Context())
	if err := h.updateStatusUseCase.Execute(r.Context(), id, payload.Status, token); err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	token := TokenFromContext(r.Context())
	if err := h.deleteListingUC.Execute(r.Context(), id, token); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
