package employee

import (
	"errors"
	"strings"
)

// MaxPhotoBytes caps profile photos at 30 KB across every upload path.
const MaxPhotoBytes = 30 * 1024

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg":  {},
	"image/jpg":   {},
	"image/pjpeg": {},
	"image/png":   {},
}

var (
	ErrPhotoTooLarge = errors.New("photo must be 30 KB or smaller")
	ErrPhotoBadType  = errors.New("only JPEG or PNG images are allowed")
)

type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ValidatePhoto enforces the size ceiling and, when a content type was
// declared, the JPEG/PNG allowlist. A nil upload passes (the field is
// optional) and an undeclared content type is governed by size alone.
func ValidatePhoto(upload *PhotoUpload) error {
	if upload == nil {
		return nil
	}
	if upload.Size > MaxPhotoBytes {
		return ErrPhotoTooLarge
	}
	ctype := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if ctype == "" {
		return nil
	}
	if _, ok := allowedPhotoTypes[ctype]; !ok {
		return ErrPhotoBadType
	}
	return nil
}

// PhotoExt derives the stored extension from the uploaded filename,
// defaulting to jpg.
func PhotoExt(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return "jpg"
	}
	return strings.ToLower(fileName[idx+1:])
}
