package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы
	// Это нужно, чтобы схемы могли ссылаться друг на друга через `$ref`
	err := fs.WalkDir(schemas.FormsFS, "forms", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemas.FormsFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemas.FormsFS, "forms", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "forms/listing-form/v1.json"
// в ключ вида "ListingForm/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, "forms/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	for i, p := range nameParts {
		nameParts[i] = caser.String(p)
	}
	name := strings.Join(nameParts, "")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return name + "/" + version
}

// validate проверяет payload по зарегистрированной схеме.
func validate(key string, payload interface{}) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("no schema registered for key %q", key)
	}
	return schema.Validate(payload)
}

// listingFormPayload - проекция формы на проверяемый JSON-документ.
// omitempty важен: незаполненное обязательное поле должно отсутствовать
// в документе, чтобы сработал required.
type listingFormPayload struct {
	PropertyTitle     string  `json:"propertyTitle,omitempty"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price,omitempty"`
	DiscountedPrice   float64 `json:"discountedPrice,omitempty"`
	DiscountPercent   float64 `json:"discountPercent,omitempty"`
	Location          string  `json:"location,omitempty"`
	PropertyCategory  string  `json:"propertyCategory,omitempty"`
	NumberOfBedrooms  int     `json:"numberOfBedrooms,omitempty"`
	NumberOfBathrooms int     `json:"numberOfBathrooms,omitempty"`
	SquareFeet        float64 `json:"squareFeet,omitempty"`
	PropertyType      string  `json:"propertyType,omitempty"`
	SellerID          int64   `json:"sellerId,omitempty"`
}

// ValidateListingForm проверяет форму объявления до отправки backend'у.
// Нарушение схемы возвращается как доменная ValidationError с именем поля.
func ValidateListingForm(form domain.ListingForm) error {
	payload := listingFormPayload{
		PropertyTitle:     form.PropertyTitle,
		Description:       form.Description,
		Price:             form.Price,
		DiscountedPrice:   form.DiscountedPrice,
		DiscountPercent:   form.DiscountPercent,
		Location:          form.Location,
		PropertyCategory:  form.PropertyCategory,
		NumberOfBedrooms:  form.NumberOfBedrooms,
		NumberOfBathrooms: form.NumberOfBathrooms,
		SquareFeet:        form.SquareFeet,
		PropertyType:      string(form.PropertyType),
		SellerID:          form.SellerID,
	}

	// Прогоняем через json, чтобы валидатор видел обычный декодированный документ.
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal listing form for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal listing form for validation: %w", err)
	}

	if err := validate("ListingForm/1.0.0", doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return err
		}
		leaf := leafCause(ve)
		return &domain.ValidationError{
			Field:   fieldFromCause(leaf),
			Message: leaf.Message,
		}
	}
	return nil
}

func leafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// fieldFromCause достает имя поля из места нарушения. Для required
// указатель пустой, имя поля лежит в сообщении вида
// `missing properties: 'price'`.
func fieldFromCause(ve *jsonschema.ValidationError) string {
	field := strings.TrimPrefix(ve.InstanceLocation, "/")
	if field != "" {
		return field
	}
	if _, after, ok := strings.Cut(ve.Message, "'"); ok {
		if name, _, ok := strings.Cut(after, "'"); ok {
			return name
		}
	}
	return "form"
}
