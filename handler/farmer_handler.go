package handler

import (
	"errors"
	"harvesthub/common"
	"harvesthub/logger"
	"harvesthub/model"
	"harvesthub/service"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// photoFormField is the multipart field carrying an uploaded profile photo.
const photoFormField = "photo"

// FarmerHandler serves registration and farmer profile endpoints.
type FarmerHandler struct {
	service *service.FarmerService
}

func NewFarmerHandler(s *service.FarmerService) *FarmerHandler {
	return &FarmerHandler{service: s}
}

// Register godoc
// @Summary      Register a farmer
// @Description  Validates the sign-up form, creates the farmer account and sends a confirmation SMS.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        submission body model.RegistrationSubmission true "Farmer sign-up form"
// @Success      201  {object}  model.Farmer
// @Failure      400  {object}  common.AppError "The first validation problem found"
// @Failure      409  {object}  common.AppError "Email or mobile already registered"
// @Failure      413  {object}  common.AppError "Profile photo too large"
// @Failure      415  {object}  common.AppError "Profile photo format not supported"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/register [post]
func (h *FarmerHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var sub model.RegistrationSubmission
	if appErr := common.Decode(w, r, &sub); appErr != nil {
		return appErr
	}

	farmer, err := h.service.Register(r.Context(), &sub)
	if err != nil {
		return toAppError(err, "Could not create account")
	}

	common.WriteJSON(w, http.StatusCreated, farmer)
	return nil
}

// UploadPhoto godoc
// @Summary      Check and encode a profile photo
// @Description  Accepts a JPEG, PNG or WEBP image up to 2MB and returns it as a data URI for the registration form.
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo formData file true "Profile photo"
// @Success      200  {object}  model.PhotoResponse
// @Failure      400  {object}  common.AppError
// @Failure      413  {object}  common.AppError
// @Failure      415  {object}  common.AppError
// @Router       /api/photos [post]
func (h *FarmerHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) *common.AppError {
	file, appErr := readPhotoFile(w, r)
	if appErr != nil {
		return appErr
	}

	photo, err := h.service.CheckPhoto(file)
	if err != nil {
		return toAppError(err, "Could not process photo")
	}

	common.WriteJSON(w, http.StatusOK, model.PhotoResponse{
		ProfilePhoto: photo.DataURI,
		ContentType:  photo.ContentType,
		Size:         photo.Size,
	})
	return nil
}

// GetMe godoc
// @Summary      Current farmer profile
// @Tags         farmers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Farmer
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/farmers/me [get]
func (h *FarmerHandler) GetMe(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Missing session", nil)
	}

	farmer, err := h.service.GetFarmer(r.Context(), session.FarmerID)
	if err != nil {
		return toAppError(err, "Could not retrieve profile")
	}

	common.WriteJSON(w, http.StatusOK, farmer)
	return nil
}

// UpdateMyPhoto godoc
// @Summary      Replace the current farmer's profile photo
// @Tags         farmers
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photo formData file true "Profile photo"
// @Success      200  {object}  model.Farmer
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      413  {object}  common.AppError
// @Failure      415  {object}  common.AppError
// @Router       /api/farmers/me/photo [put]
func (h *FarmerHandler) UpdateMyPhoto(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Missing session", nil)
	}

	file, appErr := readPhotoFile(w, r)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithFields(logrus.Fields{
		"farmer_id":    session.FarmerID,
		"content_type": file.ContentType,
		"size":         file.Size,
	}).Info("Update profile photo request received")

	farmer, err := h.service.UpdateProfilePhoto(r.Context(), session.FarmerID, file)
	if err != nil {
		return toAppError(err, "Could not update profile photo")
	}

	common.WriteJSON(w, http.StatusOK, farmer)
	return nil
}

// GetFarmerByID godoc
// @Summary      Farmer profile by ID (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Farmer ID"
// @Success      200  {object}  model.Farmer
// @Failure      400  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/admin/farmers/{id} [get]
func (h *FarmerHandler) GetFarmerByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid farmer ID in URL path", err)
	}

	farmer, err := h.service.GetFarmer(r.Context(), id)
	if err != nil {
		return toAppError(err, "Could not retrieve farmer")
	}

	common.WriteJSON(w, http.StatusOK, farmer)
	return nil
}

// readPhotoFile extracts the uploaded photo from a multipart request. The body is capped a
// little above the photo limit so oversized files are still reported by their declared size.
func readPhotoFile(w http.ResponseWriter, r *http.Request) (model.PhotoFile, *common.AppError) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*service.MaxPhotoBytes)
	if err := r.ParseMultipartForm(service.MaxPhotoBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.PhotoFile{}, &common.AppError{
				Code:    http.StatusRequestEntityTooLarge,
				Message: "Image size must be less than 2MB.",
				Field:   "profilePhoto",
				Err:     err,
			}
		}
		return model.PhotoFile{}, common.NewAppError(http.StatusBadRequest, "Invalid multipart form", err)
	}

	f, header, err := r.FormFile(photoFormField)
	if err != nil {
		return model.PhotoFile{}, common.NewFieldError("profilePhoto", "A photo file is required.", err)
	}
	defer f.Close()

	file := model.PhotoFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
	if header.Size > service.MaxPhotoBytes {
		return file, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return model.PhotoFile{}, common.NewAppError(http.StatusBadRequest, "Could not read photo", err)
	}
	file.Data = data
	return file, nil
}
