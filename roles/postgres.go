package roles

import (
	"context"
	"database/sql"
	"errors"
)

// SQLStore persists records in the custom_roles table. The schema is created
// at startup by the bot package.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, userID string) (Record, error) {
	rec := Record{UserID: userID}
	err := s.db.QueryRowContext(ctx, `
		SELECT role_id, name, color, created_at, updated_at
		FROM custom_roles WHERE user_id = $1
	`, userID).Scan(&rec.RoleID, &rec.Name, &rec.Color, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, &StorageError{Op: "get", Err: err}
	}
	return rec, nil
}

func (s *SQLStore) Put(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_roles (user_id, role_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			role_id = EXCLUDED.role_id,
			name = EXCLUDED.name,
			color = EXCLUDED.color,
			updated_at = EXCLUDED.updated_at
	`, rec.UserID, rec.RoleID, rec.Name, rec.Color, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return &StorageError{Op: "put", Err: err}
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM custom_roles WHERE user_id = $1", userID)
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

func (s *SQLStore) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, role_id, name, color, created_at, updated_at
		FROM custom_roles ORDER BY user_id
	`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.UserID, &rec.RoleID, &rec.Name, &rec.Color, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return records, nil
}
