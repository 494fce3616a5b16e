package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HRMS001", "hrms001"},
		{"  AB 12/CD  ", "ab-12-cd"},
		{"a__b", "a-b"},
		{"///", "unknown"},
		{"", "unknown"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveOverwritesAndDropsOldExtension(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	name, err := store.Save("HRMS001", "jpg", []byte("first"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "hrms001.jpg" {
		t.Fatalf("name = %q", name)
	}

	name, err = store.Save("HRMS001", ".PNG", []byte("second"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "hrms001.png" {
		t.Fatalf("name = %q", name)
	}

	if _, err := os.Stat(filepath.Join(store.Dir, "hrms001.jpg")); !os.IsNotExist(err) {
		t.Error("old extension file should be removed")
	}
	data, err := store.Open(name)
	if err != nil || string(data) != "second" {
		t.Fatalf("Open = %q, %v", data, err)
	}
}
