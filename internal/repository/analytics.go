package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AnalyticsRepository runs the reporting aggregations. These are the
// expensive queries the snapshot cache exists for.
type AnalyticsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAnalyticsRepo(db *dbpg.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// TopArtists ranks artists by lifetime gross (tickets_sold x ticket_price
// summed over their events) and attaches the venue where each artist sold
// the most tickets.
func (r *AnalyticsRepository) TopArtists(ctx context.Context, limit int) ([]*domain.ArtistSales, error) {
	query := `WITH venue_totals AS (
				  SELECT p.artist_id, e.venue_id,
						 SUM(e.tickets_sold * e.ticket_price) AS venue_gross,
						 SUM(e.tickets_sold)                  AS venue_sold
				  FROM events e
				  JOIN performances p ON p.id = e.performance_id
				  GROUP BY p.artist_id, e.venue_id
			  ),
			  artist_totals AS (
				  SELECT artist_id,
						 SUM(venue_gross) AS total_gross,
						 SUM(venue_sold)  AS total_sold
				  FROM venue_totals
				  GROUP BY artist_id
			  ),
			  favorite AS (
				  SELECT DISTINCT ON (artist_id) artist_id, venue_id
				  FROM venue_totals
				  ORDER BY artist_id, venue_sold DESC
			  )
			  SELECT a.id, a.artist_name, a.image_url,
					 t.total_gross, t.total_sold,
					 v.name, v.city, v.state
			  FROM artist_totals t
			  JOIN artist_profiles a ON a.id = t.artist_id
			  JOIN favorite f ON f.artist_id = t.artist_id
			  JOIN venues v ON v.id = f.venue_id
			  ORDER BY t.total_gross DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top artists: %w", err)
	}
	defer rows.Close()

	var res []*domain.ArtistSales
	for rows.Next() {
		var s domain.ArtistSales
		if err = rows.Scan(
			&s.ArtistID, &s.ArtistName, &s.ImageURL,
			&s.GrossSales, &s.TicketsSold,
			&s.FavoriteVenue.Name, &s.FavoriteVenue.City, &s.FavoriteVenue.State,
		); err != nil {
			return nil, fmt.Errorf("scan artist sales: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
