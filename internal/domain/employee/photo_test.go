package employee

import (
	"errors"
	"testing"
)

func TestValidatePhoto(t *testing.T) {
	tests := []struct {
		name    string
		upload  *PhotoUpload
		wantErr error
	}{
		{
			name: "nil upload passes",
		},
		{
			name:   "exactly at ceiling passes",
			upload: &PhotoUpload{ContentType: "image/jpeg", Size: MaxPhotoBytes},
		},
		{
			name:    "one byte over fails",
			upload:  &PhotoUpload{ContentType: "image/jpeg", Size: MaxPhotoBytes + 1},
			wantErr: ErrPhotoTooLarge,
		},
		{
			name:   "no declared type governed by size alone",
			upload: &PhotoUpload{Size: 1024},
		},
		{
			name:    "gif rejected regardless of size",
			upload:  &PhotoUpload{ContentType: "image/gif", Size: 10},
			wantErr: ErrPhotoBadType,
		},
		{
			name:   "legacy pjpeg accepted",
			upload: &PhotoUpload{ContentType: "image/pjpeg", Size: 1024},
		},
		{
			name:   "nonstandard image/jpg accepted",
			upload: &PhotoUpload{ContentType: "image/jpg", Size: 1024},
		},
		{
			name:   "content type compared case-insensitively",
			upload: &PhotoUpload{ContentType: "IMAGE/PNG", Size: 1024},
		},
		{
			name:    "oversize gif reports size first",
			upload:  &PhotoUpload{ContentType: "image/gif", Size: MaxPhotoBytes + 1},
			wantErr: ErrPhotoTooLarge,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePhoto(tc.upload)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPhotoExt(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"photo.PNG", "png"},
		{"photo.jpeg", "jpeg"},
		{"photo", "jpg"},
		{"photo.", "jpg"},
	}
	for _, tc := range tests {
		if got := PhotoExt(tc.fileName); got != tc.want {
			t.Fatalf("PhotoExt(%q) = %q, want %q", tc.fileName, got, tc.want)
		}
	}
}
