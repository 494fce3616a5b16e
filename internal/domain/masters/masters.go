// Package masters holds the dropdown reference data the register links to.
package masters

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type College struct {
	ID      string `json:"id"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type District struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListColleges(ctx context.Context) ([]College, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(code, ''), name, COALESCE(address, '')
    FROM colleges
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []College
	for rows.Next() {
		var c College
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CreateCollege(ctx context.Context, c College) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO colleges (code, name, address)
    VALUES ($1, $2, $3)
    RETURNING id
  `, c.Code, c.Name, c.Address).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListDistricts(ctx context.Context) ([]District, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(state, '')
    FROM districts
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []District
	for rows.Next() {
		var d District
		if err := rows.Scan(&d.ID, &d.Name, &d.State); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) CreateDistrict(ctx context.Context, d District) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO districts (name, state)
    VALUES ($1, $2)
    RETURNING id
  `, d.Name, d.State).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
