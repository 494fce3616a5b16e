package employee

import (
	"context"

	"servicebook/internal/domain/auth"
	"servicebook/internal/platform/storage"
)

type Service struct {
	Store  *Store
	Auth   *auth.Service
	Photos *storage.PhotoStore
}

func NewService(store *Store, authSvc *auth.Service, photos *storage.PhotoStore) *Service {
	return &Service{Store: store, Auth: authSvc, Photos: photos}
}

// Create persists the employee and then runs the credential provisioning
// hook, so the side effect is visible in the call graph rather than an
// implicit save subscriber.
func (s *Service) Create(ctx context.Context, e Employee) (Employee, error) {
	id, err := s.Store.CreateEmployee(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	if err := s.Auth.EnsureCredential(ctx, id, e.HRMSID, e.Email, "", e.DOB); err != nil {
		return Employee{}, err
	}
	return s.Store.GetEmployee(ctx, id)
}

// Update persists changes and re-runs provisioning, which keeps the
// credential username in sync when the HRMS ID changed and provisions a
// login for records imported before the hook existed.
func (s *Service) Update(ctx context.Context, employeeID string, e Employee) (Employee, error) {
	existing, err := s.Store.GetEmployee(ctx, employeeID)
	if err != nil {
		return Employee{}, err
	}
	if err := s.Store.UpdateEmployee(ctx, employeeID, e); err != nil {
		return Employee{}, err
	}
	if err := s.Auth.EnsureCredential(ctx, employeeID, e.HRMSID, e.Email, existing.UserID, e.DOB); err != nil {
		return Employee{}, err
	}
	return s.Store.GetEmployee(ctx, employeeID)
}

// SavePhoto validates and stores a profile photo, replacing any previous
// artifact. The same rule runs for the console and the portal.
func (s *Service) SavePhoto(ctx context.Context, employeeID string, upload *PhotoUpload) (string, error) {
	if err := ValidatePhoto(upload); err != nil {
		return "", err
	}
	if upload == nil {
		return "", nil
	}

	emp, err := s.Store.GetEmployee(ctx, employeeID)
	if err != nil {
		return "", err
	}

	name, err := s.Photos.Save(emp.HRMSID, PhotoExt(upload.FileName), upload.Data)
	if err != nil {
		return "", err
	}
	if err := s.Store.UpdatePhotoPath(ctx, employeeID, name); err != nil {
		return "", err
	}
	return name, nil
}
