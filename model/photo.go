// file: model/photo.go

package model

// PhotoFile is an uploaded image as received at the file input boundary.
type PhotoFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// EncodedPhoto is a checked photo in its transportable data URI form.
type EncodedPhoto struct {
	DataURI     string
	ContentType string
	Size        int64
}
