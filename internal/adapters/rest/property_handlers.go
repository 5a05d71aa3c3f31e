package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	browseUseCase  usecases_port.BrowsePropertiesUseCasePort
	detailsUseCase usecases_port.GetPropertyDetailsUseCasePort
	wishlist       usecases_port.GetWishlistUseCasePort
}

func NewPropertyHandler(
	browseUseCase usecases_port.BrowsePropertiesUseCasePort,
	detailsUseCase usecases_port.GetPropertyDetailsUseCasePort,
	wishlist usecases_port.GetWishlistUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		browseUseCase:  browseUseCase,
		detailsUseCase: detailsUseCase,
		wishlist:       wishlist,
	}
}

// browseItemPayload дополняет запись флагом избранного, чтобы список
// рендерился одним запросом.
type browseItemPayload struct {
	propertyPayload

	InWishlist bool `json:"inWishlist"`
}

// Browse отдает объявления сегмента, пропущенные через фильтр.
// Каждый запрос несет полный набор критериев.
func (h *PropertyHandler) Browse(w http.ResponseWriter, r *http.Request) {
	segment, err := domain.ParseSegment(r.URL.Query().Get("segment"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	criteria := domain.CriteriaFromQuery(r.URL.Query())
	token := TokenFromContext(r.Context())

	records, err := h.browseUseCase.Execute(r.Context(), segment, criteria, token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// Сбой чтения избранного не роняет список: флаги просто не ставятся.
	saved := map[int64]bool{}
	if wishlist, err := h.wishlist.Execute(r.Context()); err == nil {
		for _, item := range wishlist {
			saved[item.ID] = true
		}
	}

	payload := make([]browseItemPayload, len(records))
	for i, record := range records {
		payload[i] = browseItemPayload{
			propertyPayload: propertyToPayload(record),
			InWishlist:      saved[record.ID],
		}
	}
	RespondWithJSON(w, http.StatusOK, payload)
}

// GetDetails отдает карточку объекта; координаты опциональны.
func (h *PropertyHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	token := TokenFromContext(r.Context())
	result, err := h.detailsUseCase.Execute(r.Context(), id, token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, detailsToPayload(result))
}
