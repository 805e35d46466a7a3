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

type ArtistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewArtistRepo(db *dbpg.DB) *ArtistRepository {
	return &ArtistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.ArtistProfile) error {
	query := `INSERT INTO artist_profiles (id, artist_name, image_url, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.ArtistName, a.ImageURL, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert artist profile: %w", err)
	}

	return nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.ArtistProfile, error) {
	query := `SELECT id, artist_name, image_url, created_at
			  FROM artist_profiles
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get artist profile: %w", err)
	}

	var a domain.ArtistProfile
	if err = row.Scan(&a.ID, &a.ArtistName, &a.ImageURL, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("scan artist profile: %w", err)
	}

	return &a, nil
}

func (r *ArtistRepository) List(ctx context.Context) ([]*domain.ArtistProfile, error) {
	query := `SELECT id, artist_name, image_url, created_at
			  FROM artist_profiles
			  ORDER BY artist_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list artist profiles: %w", err)
	}
	defer rows.Close()

	var res []*domain.ArtistProfile
	for rows.Next() {
		var a domain.ArtistProfile
		if err = rows.Scan(&a.ID, &a.ArtistName, &a.ImageURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan artist profile: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
