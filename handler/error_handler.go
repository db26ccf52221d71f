package handler

import (
	"errors"
	"harvesthub/common"
	"harvesthub/logger"
	"harvesthub/service"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags every request with an X-Request-ID and logs its outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.Log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Request handled")
	})
}

// toAppError maps service errors onto HTTP responses.
func toAppError(err error, fallback string) *common.AppError {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		appErr := common.NewFieldError(validationErr.Field, validationErr.Message, err)
		switch {
		case errors.Is(err, service.ErrPhotoTooLarge):
			appErr.Code = http.StatusRequestEntityTooLarge
		case errors.Is(err, service.ErrPhotoUnsupportedFormat):
			appErr.Code = http.StatusUnsupportedMediaType
		}
		return appErr
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrMobileTaken),
		errors.Is(err, service.ErrAlreadyRegistered):
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	case errors.Is(err, service.ErrFarmerNotFound):
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
