package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

func validForm() domain.ListingForm {
	return domain.ListingForm{
		PropertyTitle:    "Sunrise Villa",
		Description:      "Nice place",
		Price:            50000,
		Location:         "Bangalore",
		PropertyCategory: "Villa",
		SquareFeet:       1200,
		PropertyType:     domain.SegmentBuy,
		SellerID:         7,
	}
}

func TestValidateListingFormAccepted(t *testing.T) {
	assert.NoError(t, ValidateListingForm(validForm()))
}

func TestValidateListingFormMissingRequiredField(t *testing.T) {
	form := validForm()
	form.PropertyTitle = ""

	err := ValidateListingForm(form)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "propertyTitle", validationErr.Field)
}

func TestValidateListingFormMissingPrice(t *testing.T) {
	form := validForm()
	form.Price = 0

	err := ValidateListingForm(form)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "price", validationErr.Field)
}

func TestValidateListingFormBadSegment(t *testing.T) {
	form := validForm()
	form.PropertyType = "LEASE"

	err := ValidateListingForm(form)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "propertyType", validationErr.Field)
}
