// file: service/registration_validator.go

package service

import (
	"errors"
	"harvesthub/common"
	"harvesthub/model"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidMobile     = errors.New("invalid mobile number")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidFarmerType = errors.New("invalid farmer type")
	ErrPasswordTooLong   = errors.New("password too long")
	ErrFieldTooLong      = errors.New("field too long")
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest password bcrypt can hash.
	MaxPasswordBytes = 72
	// MaxTextLength matches the VARCHAR(255) columns of the farmers table.
	MaxTextLength = 255
)

// ValidationError is a user-correctable registration problem. Err is one of the
// package sentinels so callers can match it with errors.Is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ruleFailure maps a failed validator tag to its error, message and rank.
// Lower ranks win when several rules fail at once.
type ruleFailure struct {
	rank    int
	err     error
	message string
}

var ruleFailures = map[string]ruleFailure{
	"required":    {1, ErrMissingField, "All fields except profile photo are required."},
	"loose_email": {2, ErrInvalidEmail, "Please enter a valid email address."},
	"mobile10":    {3, ErrInvalidMobile, "Please enter a valid 10-digit phone number."},
	"min":         {4, ErrPasswordTooShort, "Password must be at least 8 characters long."},
	"eqfield":     {5, ErrPasswordMismatch, "Passwords do not match."},
	"farmer_type": {6, ErrInvalidFarmerType, "Please choose a valid type of farmer."},
	"max_bytes":   {7, ErrPasswordTooLong, "Password must be at most 72 bytes long."},
	"max":         {8, ErrFieldTooLong, "Each field must be at most 255 characters long."},
}

// RegistrationValidator checks farmer sign-up submissions.
// It is safe for concurrent use.
type RegistrationValidator struct {
	validate *validator.Validate
	photos   *PhotoChecker
}

// NewRegistrationValidator builds a validator with the registration rules registered.
func NewRegistrationValidator(photos *PhotoChecker) *RegistrationValidator {
	v := common.NewValidator()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if photos == nil {
		photos = NewPhotoChecker()
	}
	return &RegistrationValidator{validate: v, photos: photos}
}

// Validate checks sub and returns the first problem found, in this order:
// missing fields, email shape, mobile shape, password length, password confirmation,
// farmer type, the bcrypt password limit, field lengths and finally the optional profile photo.
func (rv *RegistrationValidator) Validate(sub *model.RegistrationSubmission) (*model.ValidSubmission, error) {
	if sub == nil {
		return nil, &ValidationError{Message: ruleFailures["required"].message, Err: ErrMissingField}
	}

	if err := rv.validate.Struct(sub); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		return nil, firstFailure(fieldErrs)
	}

	valid := &model.ValidSubmission{
		FullName:     sub.FullName,
		FarmName:     sub.FarmName,
		Email:        sub.Email,
		Mobile:       sub.Mobile,
		Password:     sub.Password,
		FarmLocation: sub.FarmLocation,
		FarmerType:   sub.FarmerType,
	}

	if sub.ProfilePhoto != "" {
		file, err := ParsePhotoDataURI(sub.ProfilePhoto)
		if err != nil {
			return nil, err
		}
		photo, err := rv.photos.Check(file)
		if err != nil {
			return nil, err
		}
		valid.Photo = photo
	}

	return valid, nil
}

func firstFailure(fieldErrs validator.ValidationErrors) *ValidationError {
	var (
		best      ruleFailure
		bestField string
		found     bool
	)
	for _, fe := range fieldErrs {
		rule, ok := ruleFailures[fe.Tag()]
		if !ok {
			continue
		}
		if !found || rule.rank < best.rank {
			best, bestField, found = rule, fe.Field(), true
		}
	}
	if !found {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: fe.Error(), Err: ErrMissingField}
	}
	return &ValidationError{Field: bestField, Message: best.message, Err: best.err}
}
