package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account inactive")
)

// defaultPasswordPrefix seeds the fallback credential when no birth date
// is on record.
const defaultPasswordPrefix = "Ngp@"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type LoginResult struct {
	User       User
	EmployeeID string
}

// Login resolves the identifier with two ordered strategies: first as an
// HRMS ID via the linked employee record, then as a raw username. A missing
// match under the first strategy falls through; a wrong password does not.
func (s *Service) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)

	user, employeeID, err := s.Store.UserByEmployeeHRMS(ctx, identifier)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.Store.UserByUsername(ctx, identifier)
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		if err != nil {
			return LoginResult{}, err
		}
		employeeID, err = s.Store.EmployeeIDForUser(ctx, user.ID)
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !user.HasUsablePassword() || CheckPassword(user.PasswordHash, password) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return LoginResult{}, ErrInactiveAccount
	}

	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, EmployeeID: employeeID}, nil
}

// EnsureCredential provisions a login for an employee record: username is
// the HRMS ID, the default secret derives from the birth date (DDMMYYYY)
// or a prefixed tail of the HRMS ID. A credential that already carries a
// usable secret is never overwritten; a linked credential only has its
// username re-synced.
func (s *Service) EnsureCredential(ctx context.Context, employeeID, hrmsID, email, linkedUserID string, dob *time.Time) error {
	hrmsID = strings.TrimSpace(hrmsID)
	if hrmsID == "" {
		return nil
	}

	if linkedUserID != "" {
		linked, err := s.Store.UserByID(ctx, linkedUserID)
		if err != nil {
			return err
		}
		if linked.Username != hrmsID {
			return s.Store.UpdateUsername(ctx, linkedUserID, hrmsID)
		}
		return nil
	}

	user, err := s.Store.UserByUsername(ctx, hrmsID)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.Store.CreateUser(ctx, hrmsID, email)
	}
	if err != nil {
		return err
	}

	if !user.HasUsablePassword() {
		hash, err := HashPassword(DefaultPassword(dob, hrmsID))
		if err != nil {
			return err
		}
		if err := s.Store.SetPassword(ctx, user.ID, hash); err != nil {
			return err
		}
	}

	if err := s.Store.SetActive(ctx, user.ID, true); err != nil {
		return err
	}
	return s.Store.LinkEmployee(ctx, employeeID, user.ID)
}

// DefaultPassword derives the provisioning secret: DDMMYYYY from the birth
// date when known, otherwise the fixed prefix plus the last four characters
// of the HRMS ID left-padded with zeros.
func DefaultPassword(dob *time.Time, hrmsID string) string {
	if dob != nil && !dob.IsZero() {
		return dob.Format("02012006")
	}
	tail := hrmsID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	for len(tail) < 4 {
		tail = "0" + tail
	}
	return defaultPasswordPrefix + tail
}
