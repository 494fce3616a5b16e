package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"servicebook/internal/domain/auth"
	"servicebook/internal/platform/config"
)

// Seed ensures the staff console account exists so a fresh deployment is usable.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	username := strings.TrimSpace(cfg.SeedAdminUsername)
	if username == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE username = $1", username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (username, email, password_hash, is_staff, is_active)
    VALUES ($1, '', $2, TRUE, TRUE)
  `, username, hash)
	return err
}
