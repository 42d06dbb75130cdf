package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// planRepo implements PlanRepo over the plans table.
type planRepo struct {
	db *sql.DB
}

func (r *planRepo) Save(ctx context.Context, rec *PlanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (id, student, strategy, created_at, body) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Student, rec.Strategy, rec.CreatedAt.UnixMilli(), rec.Body)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, id string) (*PlanRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, student, strategy, created_at, body FROM plans WHERE id = ?`, id)

	rec, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return rec, nil
}

func (r *planRepo) List(ctx context.Context, opts ListOpts) ([]PlanRecord, error) {
	query := `SELECT id, student, strategy, created_at, body FROM plans`
	var (
		where []string
		args  []any
	)
	if opts.Student != "" {
		where = append(where, "student = ?")
		args = append(args, opts.Student)
	}
	if opts.Strategy != "" {
		where = append(where, "strategy = ?")
		args = append(args, opts.Strategy)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var result []PlanRecord
	for rows.Next() {
		rec, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func (r *planRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM plans WHERE id NOT IN (
			SELECT id FROM plans ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, max(keep, 0))
	if err != nil {
		return fmt.Errorf("prune plans: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(s scanner) (*PlanRecord, error) {
	var (
		rec     PlanRecord
		created int64
	)
	if err := s.Scan(&rec.ID, &rec.Student, &rec.Strategy, &created, &rec.Body); err != nil {
		return nil, err
	}
	rec.CreatedAt = time.UnixMilli(created).UTC()
	return &rec, nil
}
