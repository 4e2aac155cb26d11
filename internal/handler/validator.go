package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gridloom/gridloom/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Custom validations for equipment slots and listing sort orders
	_ = v.RegisterValidation("slot", validateSlot)
	_ = v.RegisterValidation("listingsort", validateListingSort)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner error messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "slot":
			errs[field] = "Invalid equipment slot"
		case "listingsort":
			errs[field] = "Invalid sort order"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateSlot accepts a known equipment slot, "all", or empty
func validateSlot(fl validator.FieldLevel) bool {
	slot := fl.Field().String()
	if slot == "" || slot == "all" {
		return true
	}
	return domain.IsKnownSlot(slot)
}

// validateListingSort accepts a known sort order or empty
func validateListingSort(fl validator.FieldLevel) bool {
	order := fl.Field().String()
	if order == "" {
		return true
	}
	return domain.IsKnownSort(order)
}
