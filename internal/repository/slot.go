package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const slotColumns = `id, start_time, status, user_id, proof_ref, created_at, updated_at`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, startTime time.Time) (*domain.Slot, error) {
	query := `INSERT INTO slots (start_time, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $3)
			  RETURNING ` + slotColumns

	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, startTime.UTC(), domain.SlotStatusFree, now)
	if err != nil {
		return nil, fmt.Errorf("insert slot: %w", err)
	}

	return scanSlotRow(row)
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlotRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *SlotRepository) GetFreeByStartTime(ctx context.Context, startTime time.Time) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE start_time = $1 AND status = $2
			  ORDER BY id
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, startTime.UTC(), domain.SlotStatusFree)
	if err != nil {
		return nil, fmt.Errorf("get slot by start time: %w", err)
	}

	s, err := scanSlotRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *SlotRepository) ListFree(ctx context.Context) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE status = $1
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.SlotStatusFree)
	if err != nil {
		return nil, fmt.Errorf("list free slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (r *SlotRepository) ListAll(ctx context.Context) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Reserve is the claim-time transition. The status guard in the WHERE clause
// makes the free -> pending_review step atomic: of two concurrent claimants
// exactly one sees rows=1.
func (r *SlotRepository) Reserve(ctx context.Context, id, userID int64) error {
	query := `UPDATE slots
			  SET status = $3, user_id = $4, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.SlotStatusFree, domain.SlotStatusPendingReview, userID,
	)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotUnavailable
	}

	return nil
}

func (r *SlotRepository) AttachProof(ctx context.Context, id, userID int64, proofRef string) error {
	query := `UPDATE slots
			  SET proof_ref = $4, updated_at = now()
			  WHERE id = $1 AND status = $2 AND user_id = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.SlotStatusPendingReview, userID, proofRef,
	)
	if err != nil {
		return fmt.Errorf("attach proof: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach proof rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotUnavailable
	}

	return nil
}

func (r *SlotRepository) Confirm(ctx context.Context, id, userID int64) error {
	query := `UPDATE slots
			  SET status = $4, updated_at = now()
			  WHERE id = $1 AND status = $2 AND user_id = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.SlotStatusPendingReview, userID, domain.SlotStatusBooked,
	)
	if err != nil {
		return fmt.Errorf("confirm slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing slot from a slot in the wrong state.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrSlotNotPending
	}

	return nil
}

func (r *SlotRepository) Release(ctx context.Context, id int64) error {
	query := `UPDATE slots
			  SET status = $3, user_id = NULL, proof_ref = NULL, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.SlotStatusPendingReview, domain.SlotStatusFree,
	)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing slot from a slot in the wrong state: a stale
		// reject must not free a slot that was approved in the meantime.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrSlotNotPending
	}

	return nil
}

func (r *SlotRepository) ReleaseIfHeld(ctx context.Context, id, userID int64) error {
	query := `UPDATE slots
			  SET status = $4, user_id = NULL, proof_ref = NULL, updated_at = now()
			  WHERE id = $1 AND status = $2 AND user_id = $3`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.SlotStatusPendingReview, userID, domain.SlotStatusFree,
	)
	if err != nil {
		return fmt.Errorf("release held slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) ReleaseExpired(ctx context.Context, ttl time.Duration) ([]*domain.Slot, error) {
	query := `UPDATE slots
			  SET status = $2, user_id = NULL, proof_ref = NULL, updated_at = now()
			  WHERE status = $1
			    AND updated_at + make_interval(secs => $3) < now()
			  RETURNING ` + slotColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.SlotStatusPendingReview, domain.SlotStatusFree, ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("release expired: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func scanSlotRow(row *sql.Row) (*domain.Slot, error) {
	var s domain.Slot
	if err := row.Scan(
		&s.ID, &s.StartTime, &s.Status, &s.UserID, &s.ProofRef,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(
			&s.ID, &s.StartTime, &s.Status, &s.UserID, &s.ProofRef,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
