package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const userColumns = `id, username, COALESCE(email, ''), COALESCE(password_hash, ''), is_staff, is_active, last_login, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.IsActive, &u.LastLogin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (s *Store) UserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE username = $1
  `, username))
}

func (s *Store) UserByID(ctx context.Context, userID string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE id = $1
  `, userID))
}

// UserByEmployeeHRMS resolves the credential linked to the employee whose
// HRMS ID matches, returning the employee id alongside.
func (s *Store) UserByEmployeeHRMS(ctx context.Context, hrmsID string) (User, string, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT u.id, u.username, COALESCE(u.email, ''), COALESCE(u.password_hash, ''), u.is_staff, u.is_active, u.last_login, u.created_at, e.id
    FROM employees e
    JOIN users u ON e.user_id = u.id
    WHERE e.hrms_id = $1
  `, hrmsID)
	var u User
	var employeeID string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.IsActive, &u.LastLogin, &u.CreatedAt, &employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", ErrUserNotFound
	}
	return u, employeeID, err
}

// EmployeeIDForUser returns the employee linked to a credential, or "".
func (s *Store) EmployeeIDForUser(ctx context.Context, userID string) (string, error) {
	var employeeID string
	err := s.DB.QueryRow(ctx, "SELECT id FROM employees WHERE user_id = $1", userID).Scan(&employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return employeeID, err
}

func (s *Store) CreateUser(ctx context.Context, username, email string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `
    INSERT INTO users (username, email, password_hash, is_staff, is_active)
    VALUES ($1, $2, '', FALSE, TRUE)
    RETURNING `+userColumns+`
  `, username, email))
}

func (s *Store) UpdateUsername(ctx context.Context, userID, username string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET username = $1 WHERE id = $2", username, userID)
	return err
}

func (s *Store) SetPassword(ctx context.Context, userID, hash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", hash, userID)
	return err
}

func (s *Store) SetActive(ctx context.Context, userID string, active bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = $1 WHERE id = $2", active, userID)
	return err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}

func (s *Store) LinkEmployee(ctx context.Context, employeeID, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employees SET user_id = $1 WHERE id = $2", userID, employeeID)
	return err
}
