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

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, address, city, state, zip, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Address, v.City, v.State, v.Zip, v.Capacity, now,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, address, city, state, zip, capacity, created_at, updated_at
			  FROM venues
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Zip,
		&v.Capacity, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, address, city, state, zip, capacity, created_at, updated_at
			  FROM venues
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(
			&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Zip,
			&v.Capacity, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `UPDATE venues
			  SET name=$2, address=$3, city=$4, state=$5, zip=$6, capacity=$7, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Address, v.City, v.State, v.Zip, v.Capacity,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM venues WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}
