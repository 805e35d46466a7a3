package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PerformanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPerformanceRepo(db *dbpg.DB) *PerformanceRepository {
	return &PerformanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PerformanceRepository) Create(ctx context.Context, p *domain.Performance) error {
	query := `INSERT INTO performances (id, artist_id, name, start_date, end_date, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.ArtistID, p.Name, p.StartDate, p.EndDate, p.IsActive, now,
	)
	if err != nil {
		return fmt.Errorf("insert performance: %w", err)
	}

	return nil
}

func (r *PerformanceRepository) GetByID(ctx context.Context, id string) (*domain.Performance, error) {
	query := `SELECT id, artist_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM performances
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get performance: %w", err)
	}

	var p domain.Performance
	if err = row.Scan(
		&p.ID, &p.ArtistID, &p.Name, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("scan performance: %w", err)
	}

	return &p, nil
}

func (r *PerformanceRepository) List(ctx context.Context) ([]*domain.Performance, error) {
	query := `SELECT id, artist_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM performances
			  ORDER BY start_date DESC`

	return r.queryMany(ctx, query)
}

func (r *PerformanceRepository) ListByArtist(ctx context.Context, artistID string) ([]*domain.Performance, error) {
	query := `SELECT id, artist_id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM performances
			  WHERE artist_id=$1
			  ORDER BY start_date DESC`

	return r.queryMany(ctx, query, artistID)
}

func (r *PerformanceRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Performance, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	defer rows.Close()

	var res []*domain.Performance
	for rows.Next() {
		var p domain.Performance
		if err = rows.Scan(
			&p.ID, &p.ArtistID, &p.Name, &p.StartDate, &p.EndDate,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *PerformanceRepository) Update(ctx context.Context, p *domain.Performance) error {
	query := `UPDATE performances
			  SET name=$2, start_date=$3, end_date=$4, is_active=$5, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.StartDate, p.EndDate, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update performance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("performance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPerformanceNotFound
	}

	return nil
}

func (r *PerformanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM performances WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete performance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("performance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPerformanceNotFound
	}

	return nil
}
