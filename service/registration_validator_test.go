// file: service/registration_validator_test.go

package service

import (
	"encoding/base64"
	"harvesthub/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() *model.RegistrationSubmission {
	return &model.RegistrationSubmission{
		FullName:        "Jane Doe",
		FarmName:        "Green Acres",
		Email:           "jane@farm.com",
		Mobile:          "9876543210",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FarmLocation:    "Village, District",
		FarmerType:      model.FarmerTypeMixed,
	}
}

func TestRegistrationValidator_ValidSubmission(t *testing.T) {
	v := NewRegistrationValidator(nil)

	valid, err := v.Validate(validSubmission())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", valid.FullName)
	assert.Equal(t, "jane@farm.com", valid.Email)
	assert.Equal(t, model.FarmerTypeMixed, valid.FarmerType)
	assert.Nil(t, valid.Photo)
}

func TestRegistrationValidator_MissingField(t *testing.T) {
	v := NewRegistrationValidator(nil)

	blanks := map[string]func(*model.RegistrationSubmission){
		"fullName":        func(s *model.RegistrationSubmission) { s.FullName = "" },
		"farmName":        func(s *model.RegistrationSubmission) { s.FarmName = "" },
		"email":           func(s *model.RegistrationSubmission) { s.Email = "" },
		"mobile":          func(s *model.RegistrationSubmission) { s.Mobile = "" },
		"password":        func(s *model.RegistrationSubmission) { s.Password = "" },
		"confirmPassword": func(s *model.RegistrationSubmission) { s.ConfirmPassword = "" },
		"farmLocation":    func(s *model.RegistrationSubmission) { s.FarmLocation = "" },
		"farmerType":      func(s *model.RegistrationSubmission) { s.FarmerType = "" },
	}

	for field, blank := range blanks {
		t.Run(field, func(t *testing.T) {
			sub := validSubmission()
			blank(sub)

			_, err := v.Validate(sub)

			assert.ErrorIs(t, err, ErrMissingField)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, field, vErr.Field)
			assert.Equal(t, "All fields except profile photo are required.", vErr.Error())
		})
	}

	t.Run("nil submission", func(t *testing.T) {
		_, err := v.Validate(nil)
		assert.ErrorIs(t, err, ErrMissingField)
	})
}

func TestRegistrationValidator_InvalidEmail(t *testing.T) {
	v := NewRegistrationValidator(nil)

	for _, email := range []string{"bad-email", "jane@farm", "@.", "jane@farm."} {
		sub := validSubmission()
		sub.Email = email

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestRegistrationValidator_InvalidMobile(t *testing.T) {
	v := NewRegistrationValidator(nil)

	for _, mobile := range []string{"12345", "12345678901", "12345abcde", "+987654321", " 987654321"} {
		sub := validSubmission()
		sub.Mobile = mobile

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrInvalidMobile, "mobile %q", mobile)
	}
}

func TestRegistrationValidator_Passwords(t *testing.T) {
	v := NewRegistrationValidator(nil)

	t.Run("too short", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = "short1"
		sub.ConfirmPassword = "short1"

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.EqualError(t, err, "Password must be at least 8 characters long.")
	})

	t.Run("too short wins over mismatch", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = "short1"
		sub.ConfirmPassword = "different"

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("mismatch", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = "longenough1"
		sub.ConfirmPassword = "longenough2"

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordMismatch)
		assert.EqualError(t, err, "Passwords do not match.")
	})
}

func TestRegistrationValidator_PasswordBytes(t *testing.T) {
	v := NewRegistrationValidator(nil)

	t.Run("72 bytes is accepted", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = strings.Repeat("p", 72)
		sub.ConfirmPassword = sub.Password

		_, err := v.Validate(sub)

		assert.NoError(t, err)
	})

	t.Run("80 bytes is rejected", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = strings.Repeat("p", 80)
		sub.ConfirmPassword = sub.Password

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.EqualError(t, err, "Password must be at most 72 bytes long.")
	})

	t.Run("limit counts bytes not characters", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = strings.Repeat("é", 40)
		sub.ConfirmPassword = sub.Password

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("mismatch wins over length", func(t *testing.T) {
		sub := validSubmission()
		sub.Password = strings.Repeat("p", 80)
		sub.ConfirmPassword = "secret123"

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})
}

func TestRegistrationValidator_FieldLength(t *testing.T) {
	v := NewRegistrationValidator(nil)

	long := strings.Repeat("a", 300)
	overlong := map[string]func(*model.RegistrationSubmission){
		"fullName":     func(s *model.RegistrationSubmission) { s.FullName = long },
		"farmName":     func(s *model.RegistrationSubmission) { s.FarmName = long },
		"email":        func(s *model.RegistrationSubmission) { s.Email = long + "@farm.com" },
		"farmLocation": func(s *model.RegistrationSubmission) { s.FarmLocation = long },
	}

	for field, set := range overlong {
		t.Run(field, func(t *testing.T) {
			sub := validSubmission()
			set(sub)

			_, err := v.Validate(sub)

			assert.ErrorIs(t, err, ErrFieldTooLong)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, field, vErr.Field)
		})
	}

	t.Run("255 characters is accepted", func(t *testing.T) {
		sub := validSubmission()
		sub.FullName = strings.Repeat("a", 255)

		_, err := v.Validate(sub)

		assert.NoError(t, err)
	})

	t.Run("email shape wins over length", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = long

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestRegistrationValidator_LooseEmail(t *testing.T) {
	v := NewRegistrationValidator(nil)

	sub := validSubmission()
	sub.Email = "jane@farm.c,om"

	valid, err := v.Validate(sub)

	require.NoError(t, err)
	assert.Equal(t, "jane@farm.c,om", valid.Email)
}

func TestRegistrationValidator_FirstFailureOrder(t *testing.T) {
	v := NewRegistrationValidator(nil)

	sub := validSubmission()
	sub.FarmName = ""
	sub.Email = "bad-email"
	sub.Mobile = "123"
	_, err := v.Validate(sub)
	assert.ErrorIs(t, err, ErrMissingField)

	sub = validSubmission()
	sub.Email = "bad-email"
	sub.Mobile = "123"
	_, err = v.Validate(sub)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	sub = validSubmission()
	sub.Mobile = "123"
	sub.Password = "short"
	_, err = v.Validate(sub)
	assert.ErrorIs(t, err, ErrInvalidMobile)
}

func TestRegistrationValidator_FarmerType(t *testing.T) {
	v := NewRegistrationValidator(nil)

	for _, ft := range model.FarmerTypes {
		sub := validSubmission()
		sub.FarmerType = ft
		_, err := v.Validate(sub)
		assert.NoError(t, err, "farmer type %q", ft)
	}

	sub := validSubmission()
	sub.FarmerType = "Aquaculture"
	_, err := v.Validate(sub)
	assert.ErrorIs(t, err, ErrInvalidFarmerType)
}

func TestRegistrationValidator_ProfilePhoto(t *testing.T) {
	v := NewRegistrationValidator(nil)

	t.Run("valid photo is carried through", func(t *testing.T) {
		sub := validSubmission()
		sub.ProfilePhoto = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

		valid, err := v.Validate(sub)

		require.NoError(t, err)
		require.NotNil(t, valid.Photo)
		assert.Equal(t, sub.ProfilePhoto, valid.Photo.DataURI)
		assert.Equal(t, "image/png", valid.Photo.ContentType)
	})

	t.Run("unsupported photo", func(t *testing.T) {
		sub := validSubmission()
		sub.ProfilePhoto = "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("GIF89a"))

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrPhotoUnsupportedFormat)
	})

	t.Run("field errors come before the photo", func(t *testing.T) {
		sub := validSubmission()
		sub.Mobile = "12345"
		sub.ProfilePhoto = "not a data uri"

		_, err := v.Validate(sub)

		assert.ErrorIs(t, err, ErrInvalidMobile)
	})
}
