package rest

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port/usecases_port"
)

// Предел размера multipart-формы с изображениями.
const maxListingFormSize = 32 << 20

type ListingHandler struct {
	submitUseCase usecases_port.SubmitListingUseCasePort
	deleteUseCase usecases_port.DeleteListingUseCasePort
}

func NewListingHandler(
	submitUseCase usecases_port.SubmitListingUseCasePort,
	deleteUseCase usecases_port.DeleteListingUseCasePort,
) *ListingHandler {
	return &ListingHandler{
		submitUseCase: submitUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create принимает multipart-форму объявления и создает его на платформе.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, 0)
}

// Update заменяет существующее объявление содержимым формы.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	h.submit(w, r, id)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	token := TokenFromContext(r.Context())
	if err := h.deleteUseCase.Execute(r.Context(), id, token); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) submit(w http.ResponseWriter, r *http.Request, propertyID int64) {
	form, err := parseListingForm(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	token := TokenFromContext(r.Context())
	record, err := h.submitUseCase.Execute(r.Context(), propertyID, *form, token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	status := http.StatusCreated
	if propertyID > 0 {
		status = http.StatusOK
	}
	RespondWithJSON(w, status, propertyToPayload(*record))
}

// parseListingForm читает multipart-форму в типизированную структуру.
// Числовая валидация здесь только синтаксическая; обязательность полей
// проверяет схема формы на уровне use case.
func parseListingForm(r *http.Request) (*domain.ListingForm, error) {
	if err := r.ParseMultipartForm(maxListingFormSize); err != nil {
		return nil, err
	}

	form := &domain.ListingForm{
		PropertyTitle:    r.FormValue("propertyTitle"),
		Description:      r.FormValue("description"),
		Location:         r.FormValue("location"),
		PropertyCategory: r.FormValue("propertyCategory"),
		PropertyType:     domain.Segment(r.FormValue("propertyType")),
	}

	form.Price = floatField(r, "price")
	form.DiscountedPrice = floatField(r, "discountedPrice")
	form.DiscountPercent = floatField(r, "discountPercent")
	form.SquareFeet = floatField(r, "squareFeet")
	form.NumberOfBedrooms = intField(r, "numberOfBedrooms")
	form.NumberOfBathrooms = intField(r, "numberOfBathrooms")
	form.SellerID, _ = strconv.ParseInt(r.FormValue("sellerId"), 10, 64)

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				return nil, err
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return nil, err
			}
			form.Images = append(form.Images, domain.ListingImage{
				Filename: header.Filename,
				Content:  content,
			})
		}
	}
	return form, nil
}

func floatField(r *http.Request, name string) float64 {
	v, _ := strconv.ParseFloat(r.FormValue(name), 64)
	return v
}

func intField(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.FormValue(name))
	return v
}
