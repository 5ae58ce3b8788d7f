package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Colecciones del document store.
const (
	collMedications   = "medications"
	collBloodPressure = "blood_pressure_readings"
	collDiabetic      = "diabetic_readings"
	collSubscriptions = "subscriptions"
	collContacts      = "emergency_contacts"
)

// collection guarda documentos JSON de tipo T en la tabla documents.
type collection[T any] struct {
	db   *sql.DB
	name string
}

func (c collection[T]) insert(ctx context.Context, owner, id string, sortAt time.Time, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO documents (collection, owner_id, id, body, sort_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, c.name, owner, id, body, sortAt)
	return err
}

func (c collection[T]) update(ctx context.Context, owner, id string, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}
	res, err := c.db.ExecContext(ctx, `
		UPDATE documents
		SET body = $4, updated_at = now()
		WHERE collection = $1 AND owner_id = $2 AND id = $3
	`, c.name, owner, id, body)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// upsert: last-write-wins para documentos únicos por usuario.
func (c collection[T]) upsert(ctx context.Context, owner, id string, sortAt time.Time, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO documents (collection, owner_id, id, body, sort_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (collection, owner_id, id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, c.name, owner, id, body, sortAt)
	return err
}

func (c collection[T]) get(ctx context.Context, owner, id string) (T, error) {
	var zero T
	var body []byte
	err := c.db.QueryRowContext(ctx, `
		SELECT body FROM documents
		WHERE collection = $1 AND owner_id = $2 AND id = $3
	`, c.name, owner, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return zero, fmt.Errorf("unmarshal %s: %w", c.name, err)
	}
	return v, nil
}

func (c collection[T]) delete(ctx context.Context, owner, id string) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM documents
		WHERE collection = $1 AND owner_id = $2 AND id = $3
	`, c.name, owner, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c collection[T]) list(ctx context.Context, owner string) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT body FROM documents
		WHERE collection = $1 AND owner_id = $2
		ORDER BY sort_at ASC, id ASC
	`, c.name, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", c.name, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c collection[T]) owners(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT DISTINCT owner_id FROM documents
		WHERE collection = $1
		ORDER BY owner_id
	`, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
