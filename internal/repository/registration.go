package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create records the registration and bumps the event's attendee count in one
// transaction. A full event yields ErrEventFull, a repeat ErrAlreadyRegistered.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Проверяем наличие мест
	var attendees, capacity int
	spotQuery := `SELECT attendees, capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, spotQuery, reg.EventID).Scan(&attendees, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get capacity: %w", err)
	}

	if attendees >= capacity {
		return domain.ErrEventFull
	}

	query := `INSERT INTO registrations (id, event_id, user_id, full_name, email, phone, usn, department, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, reg.ID, reg.EventID, reg.UserID,
		reg.Form.FullName, reg.Form.Email, reg.Form.Phone, reg.Form.USN, reg.Form.Department,
		reg.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE events SET attendees = attendees + 1 WHERE id = $1`, reg.EventID,
	); err != nil {
		return fmt.Errorf("increment attendees: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) ListEventIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT event_id
              FROM registrations
              WHERE user_id = $1
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, full_name, email, phone, usn, department, created_at
              FROM registrations
              WHERE event_id = $1
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Registration, 0)
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID,
			&reg.Form.FullName, &reg.Form.Email, &reg.Form.Phone, &reg.Form.USN, &reg.Form.Department,
			&reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}
