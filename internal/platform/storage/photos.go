package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// PhotoStore keeps one profile photo per employee on local disk, named by
// the employee's HRMS ID slug. Saving under the same name overwrites; a
// changed extension removes the previously stored file.
type PhotoStore struct {
	Dir string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{Dir: dir}
}

func (s *PhotoStore) Save(hrmsID, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "jpg"
	}
	slug := Slugify(hrmsID)
	name := slug + "." + ext
	path := filepath.Join(s.Dir, name)

	if err := s.removeOthers(slug, name); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func (s *PhotoStore) Open(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, filepath.Base(name)))
}

// removeOthers deletes stale files for the same slug with a different
// extension, so an extension change does not leave the old artifact behind.
func (s *PhotoStore) removeOthers(slug, keep string) error {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == keep {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if base == slug {
			if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Slugify lowercases and maps anything outside [a-z0-9] to hyphens,
// collapsing runs. An empty result becomes "unknown".
func Slugify(value string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "unknown"
	}
	return out
}
