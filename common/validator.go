package common

import (
	"encoding/json"
	"errors"
	"harvesthub/model"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	looseEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	mobilePattern     = regexp.MustCompile(`^\d{10}$`)
)

var validate = NewValidator()

// NewValidator returns a validator with the form rules shared by registration and login:
//
//	loose_email   contains something@something.something
//	mobile10      exactly ten digits
//	farmer_type   one of model.FarmerTypes
//	max_bytes=N   at most N bytes of UTF-8, not runes
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag name, so the errors are ignored.
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("farmer_type", func(fl validator.FieldLevel) bool {
		return model.FarmerType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("max_bytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return v
}

// MaxBodyBytes bounds JSON request bodies. Registrations may carry a 2 MiB photo as base64.
const MaxBodyBytes = 4 << 20

// Decode reads a JSON body into payload without running struct validation.
func Decode(w http.ResponseWriter, r *http.Request, payload interface{}) *AppError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewAppError(http.StatusRequestEntityTooLarge, "Request body too large", err)
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}
	return nil
}

// ValidateAndDecode reads a JSON body into payload and checks its validate tags.
func ValidateAndDecode(w http.ResponseWriter, r *http.Request, payload interface{}) *AppError {
	if appErr := Decode(w, r, payload); appErr != nil {
		return appErr
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAppError(http.StatusBadRequest, validationErrors.Error(), err)
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	return nil
}
