// Package rolesystems stores named sets of selectable role options. Unlike
// custom roles these have no positioning or per-user exclusivity; a system
// is just a unique name mapped to its option list.
package rolesystems

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("rolesystems: system not found")

type System struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, name string) (System, error) {
	sys := System{Name: name}
	var options string
	err := s.db.QueryRowContext(ctx,
		"SELECT options FROM role_systems WHERE name = $1", name).Scan(&options)
	if errors.Is(err, sql.ErrNoRows) {
		return System{}, ErrNotFound
	}
	if err != nil {
		return System{}, fmt.Errorf("rolesystems: get: %w", err)
	}
	if err := json.Unmarshal([]byte(options), &sys.Options); err != nil {
		return System{}, fmt.Errorf("rolesystems: get: %w", err)
	}
	return sys, nil
}

func (s *Store) Put(ctx context.Context, sys System) error {
	if sys.Name == "" {
		return errors.New("rolesystems: system name cannot be empty")
	}
	if len(sys.Options) == 0 {
		return errors.New("rolesystems: system needs at least one option")
	}
	options, err := json.Marshal(sys.Options)
	if err != nil {
		return fmt.Errorf("rolesystems: put: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO role_systems (name, options)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET options = EXCLUDED.options
	`, sys.Name, string(options))
	if err != nil {
		return fmt.Errorf("rolesystems: put: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM role_systems WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("rolesystems: delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]System, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, options FROM role_systems ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("rolesystems: list: %w", err)
	}
	defer rows.Close()

	var systems []System
	for rows.Next() {
		var sys System
		var options string
		if err := rows.Scan(&sys.Name, &options); err != nil {
			return nil, fmt.Errorf("rolesystems: list: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &sys.Options); err != nil {
			return nil, fmt.Errorf("rolesystems: list: %w", err)
		}
		systems = append(systems, sys)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rolesystems: list: %w", err)
	}
	return systems, nil
}
