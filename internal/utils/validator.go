// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/gpstracker/inventory-backend/internal/models"
)

var validate *validator.Validate

var (
	skuPattern   = regexp.MustCompile(`^[a-zA-Z0-9-]{3,50}$`)
	imeiPattern  = regexp.MustCompile(`^[0-9]{14,15}$`)
	iccidPattern = regexp.MustCompile(`^[0-9]{18,22}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("sku", validateSKU)
	validate.RegisterValidation("imei", validateImei)
	validate.RegisterValidation("iccid", validateIccid)
	validate.RegisterValidation("product_category", validateProductCategory)
	validate.RegisterValidation("item_status", validateItemStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSKU(fl validator.FieldLevel) bool {
	return skuPattern.MatchString(fl.Field().String())
}

func validateImei(fl validator.FieldLevel) bool {
	return imeiPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateIccid(fl validator.FieldLevel) bool {
	return iccidPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateProductCategory(fl validator.FieldLevel) bool {
	return models.ProductCategory(fl.Field().String()).Valid()
}

func validateItemStatus(fl validator.FieldLevel) bool {
	return models.ItemStatus(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "sku":
		return "SKU must be 3-50 characters and can only contain letters, numbers, and hyphens"
	case "imei":
		return "IMEI must be 14 or 15 digits"
	case "iccid":
		return "ICCID must be 18 to 22 digits"
	case "product_category":
		return "Category must be one of GPS_TRACKER, SIM_CARD, ACCESSORY, BUNDLE, OTHER"
	case "item_status":
		return "Status is not a recognized inventory status"
	default:
		return e.Field() + " is invalid"
	}
}

var maxPriceIntegerPart = decimal.New(1, 8) // 8 integer digits

// ValidatePrice checks the money shape the catalog accepts: positive, at
// most 8 integer digits, at most 2 fraction digits (persisted scale is 2).
func ValidatePrice(field string, value decimal.Decimal) *ValidationError {
	if !value.IsPositive() {
		return &ValidationError{Field: field, Tag: "gt", Message: field + " must be greater than 0"}
	}
	if value.Exponent() < -2 {
		return &ValidationError{Field: field, Tag: "fraction", Message: field + " can have at most 2 decimal places"}
	}
	if !value.LessThan(maxPriceIntegerPart) {
		return &ValidationError{Field: field, Tag: "digits", Message: field + " can have at most 8 integer digits"}
	}
	return nil
}
