// file: service/photo.go

package service

import (
	"encoding/base64"
	"errors"
	"harvesthub/model"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrPhotoTooLarge          = errors.New("photo too large")
	ErrPhotoUnsupportedFormat = errors.New("photo format not supported")
	ErrPhotoMalformed         = errors.New("photo data is malformed")
)

// MaxPhotoBytes is the largest accepted profile photo (2 MiB).
const MaxPhotoBytes int64 = 2 * 1024 * 1024

var supportedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoChecker enforces the profile photo size and format limits.
type PhotoChecker struct {
	maxBytes int64
}

func NewPhotoChecker() *PhotoChecker {
	return &PhotoChecker{maxBytes: MaxPhotoBytes}
}

// Check rejects photos over the size limit, then photos of an unsupported type, and
// encodes anything else as a base64 data URI. The size is the larger of the declared
// size and the data actually received. An empty declared type is sniffed from the content.
func (c *PhotoChecker) Check(file model.PhotoFile) (*model.EncodedPhoto, error) {
	size := max(file.Size, int64(len(file.Data)))
	if size > c.maxBytes {
		return nil, &ValidationError{
			Field:   "profilePhoto",
			Message: "Image size must be less than 2MB.",
			Err:     ErrPhotoTooLarge,
		}
	}

	contentType := normalizeMediaType(file.ContentType)
	if contentType == "" && len(file.Data) > 0 {
		contentType = normalizeMediaType(mimetype.Detect(file.Data).String())
	}
	if !supportedPhotoTypes[contentType] {
		return nil, &ValidationError{
			Field:   "profilePhoto",
			Message: "Only JPEG, PNG and WEBP formats are supported.",
			Err:     ErrPhotoUnsupportedFormat,
		}
	}

	return &model.EncodedPhoto{
		DataURI:     "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(file.Data),
		ContentType: contentType,
		Size:        size,
	}, nil
}

// ParsePhotoDataURI decodes a base64 data URI back into a PhotoFile.
func ParsePhotoDataURI(uri string) (model.PhotoFile, error) {
	malformed := &ValidationError{
		Field:   "profilePhoto",
		Message: "Profile photo could not be read.",
		Err:     ErrPhotoMalformed,
	}

	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return model.PhotoFile{}, malformed
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return model.PhotoFile{}, malformed
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return model.PhotoFile{}, malformed
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return model.PhotoFile{}, malformed
	}

	return model.PhotoFile{
		Size:        int64(len(data)),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func normalizeMediaType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(contentType)
	}
	return mediaType
}
