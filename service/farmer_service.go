// file: service/farmer_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"harvesthub/logger"
	"harvesthub/metrics"
	"harvesthub/model"
	"harvesthub/repository"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmailTaken        = errors.New("an account with this email already exists")
	ErrMobileTaken       = errors.New("an account with this mobile number already exists")
	ErrAlreadyRegistered = errors.New("farmer is already registered")
	ErrFarmerNotFound    = errors.New("farmer not found")
)

// ConfirmationSender dispatches the post-registration confirmation message.
type ConfirmationSender interface {
	SendConfirmationAsync(ctx context.Context, mobile, fullName string) <-chan bool
}

// FarmerService creates farmer accounts from validated registrations and serves profiles.
type FarmerService struct {
	repo      repository.IFarmerRepository
	validator *RegistrationValidator
	photos    *PhotoChecker
	auth      *AuthService
	notifier  ConfirmationSender
	cache     ICacheClient
	cacheTTL  time.Duration
	metrics   *metrics.Metrics
}

// FarmerServiceDeps groups the collaborators of FarmerService. Metrics may be nil.
type FarmerServiceDeps struct {
	Repo      repository.IFarmerRepository
	Validator *RegistrationValidator
	Photos    *PhotoChecker
	Auth      *AuthService
	Notifier  ConfirmationSender
	Cache     ICacheClient
	CacheTTL  time.Duration
	Metrics   *metrics.Metrics
}

func NewFarmerService(deps FarmerServiceDeps) *FarmerService {
	if deps.Photos == nil {
		deps.Photos = NewPhotoChecker()
	}
	if deps.Validator == nil {
		deps.Validator = NewRegistrationValidator(deps.Photos)
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = 10 * time.Minute
	}
	return &FarmerService{
		repo:      deps.Repo,
		validator: deps.Validator,
		photos:    deps.Photos,
		auth:      deps.Auth,
		notifier:  deps.Notifier,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
		metrics:   deps.Metrics,
	}
}

func farmerCacheKey(id int) string {
	return fmt.Sprintf("farmer:%d", id)
}

// Register validates sub, rejects duplicates, stores the new farmer and sends the
// confirmation message in the background.
func (s *FarmerService) Register(ctx context.Context, sub *model.RegistrationSubmission) (*model.Farmer, error) {
	valid, err := s.validator.Validate(sub)
	if err != nil {
		s.metrics.IncrementRegistrationRejected(rejectionReason(err))
		return nil, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"email":       valid.Email,
		"mobile":      logger.MaskMobile(valid.Mobile),
		"farmer_type": valid.FarmerType,
	})
	log.Info("Registration passed validation")

	if _, err := s.repo.GetFarmerByEmail(ctx, valid.Email); err == nil {
		s.metrics.IncrementRegistrationRejected("email_taken")
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("could not check email: %w", err)
	}

	taken, err := s.repo.MobileExists(ctx, valid.Mobile)
	if err != nil {
		return nil, fmt.Errorf("could not check mobile: %w", err)
	}
	if taken {
		s.metrics.IncrementRegistrationRejected("mobile_taken")
		return nil, ErrMobileTaken
	}

	hash, err := s.auth.HashPassword(valid.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	farmer := &model.Farmer{
		FullName:     valid.FullName,
		FarmName:     valid.FarmName,
		Email:        valid.Email,
		Mobile:       valid.Mobile,
		PasswordHash: hash,
		FarmLocation: valid.FarmLocation,
		FarmerType:   valid.FarmerType,
		Role:         model.RoleFarmer,
	}
	if valid.Photo != nil {
		farmer.ProfilePhoto = valid.Photo.DataURI
	}

	if err := s.repo.CreateFarmer(ctx, farmer); err != nil {
		if errors.Is(err, repository.ErrDuplicateFarmer) {
			s.metrics.IncrementRegistrationRejected("already_registered")
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("could not create farmer: %w", err)
	}

	// The message outlives the request, so it must not inherit its cancellation.
	if s.notifier != nil {
		s.notifier.SendConfirmationAsync(context.WithoutCancel(ctx), farmer.Mobile, farmer.FullName)
	}

	s.metrics.IncrementFarmersRegistered()
	log.WithField("farmer_id", farmer.ID).Info("Farmer registered")
	return farmer, nil
}

// GetFarmer returns a farmer profile, reading through the cache.
func (s *FarmerService) GetFarmer(ctx context.Context, id int) (*model.Farmer, error) {
	cacheKey := farmerCacheKey(id)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var farmer model.Farmer
			if err := json.Unmarshal([]byte(cached), &farmer); err == nil {
				return &farmer, nil
			}
		}
	}

	farmer, err := s.repo.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(farmer); err == nil {
			s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}
	return farmer, nil
}

// UpdateProfilePhoto checks file, stores it as the farmer's photo and drops the cached profile.
func (s *FarmerService) UpdateProfilePhoto(ctx context.Context, id int, file model.PhotoFile) (*model.Farmer, error) {
	photo, err := s.photos.Check(file)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfilePhoto(ctx, id, photo.DataURI); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFarmerNotFound
		}
		return nil, fmt.Errorf("could not update profile photo: %w", err)
	}

	if s.cache != nil {
		s.cache.Del(ctx, farmerCacheKey(id))
	}
	return s.GetFarmer(ctx, id)
}

// CheckPhoto exposes the photo check for the standalone upload endpoint.
func (s *FarmerService) CheckPhoto(file model.PhotoFile) (*model.EncodedPhoto, error) {
	return s.photos.Check(file)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrInvalidMobile):
		return "invalid_mobile"
	case errors.Is(err, ErrPasswordTooShort):
		return "password_too_short"
	case errors.Is(err, ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, ErrInvalidFarmerType):
		return "invalid_farmer_type"
	case errors.Is(err, ErrPasswordTooLong):
		return "password_too_long"
	case errors.Is(err, ErrFieldTooLong):
		return "field_too_long"
	case errors.Is(err, ErrPhotoTooLarge):
		return "photo_too_large"
	case errors.Is(err, ErrPhotoUnsupportedFormat):
		return "photo_unsupported_format"
	case errors.Is(err, ErrPhotoMalformed):
		return "photo_malformed"
	default:
		return "other"
	}
}
