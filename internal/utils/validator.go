// internal/utils/validator.go
package utils

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/srinivasroopa42-commits/royal-cart/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("delivery_phone", validateDeliveryPhone)
	validate.RegisterValidation("delivery_address", validateDeliveryAddress)
	validate.RegisterValidation("category_slug", validateCategorySlug)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	var errors []ValidationError

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errors = append(errors, ValidationError{
				Field:   strings.ToLower(err.Field()),
				Message: getValidationMessage(err),
			})
		}
	}
	return errors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short (minimum " + err.Param() + ")"
	case "max":
		return "Value is too long (maximum " + err.Param() + ")"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be at least " + err.Param()
	case "lte":
		return "Value must be at most " + err.Param()
	case "oneof":
		return "Value must be one of: " + err.Param()
	case "delivery_phone":
		return "Please enter a valid phone number (at least 10 digits)"
	case "delivery_address":
		return "Please enter a complete delivery address (at least 10 characters)"
	case "category_slug":
		return "Invalid category"
	case "url":
		return "Invalid URL format"
	case "latitude":
		return "Invalid latitude"
	case "longitude":
		return "Invalid longitude"
	default:
		return "Invalid value"
	}
}

// DigitCount counts the decimal digits in s, ignoring spaces, dashes,
// plus signs and any other formatting.
func DigitCount(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// ValidDeliveryPhone reports whether the phone carries at least 10
// digits once formatting characters are stripped.
func ValidDeliveryPhone(phone string) bool {
	return DigitCount(phone) >= 10
}

// ValidDeliveryAddress reports whether the trimmed address is at least
// 10 characters long and is not the unset-location placeholder.
func ValidDeliveryAddress(address string) bool {
	trimmed := strings.TrimSpace(address)
	return len(trimmed) >= 10 && trimmed != models.DefaultAddressPlaceholder
}

func validateDeliveryPhone(fl validator.FieldLevel) bool {
	return ValidDeliveryPhone(fl.Field().String())
}

func validateDeliveryAddress(fl validator.FieldLevel) bool {
	return ValidDeliveryAddress(fl.Field().String())
}

// validateCategorySlug keeps slugs to lowercase letters, digits and
// hyphens so they survive as URL path segments.
func validateCategorySlug(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	if slug == "" {
		return false
	}
	for _, r := range slug {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
