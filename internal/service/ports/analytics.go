package ports

import (
	"context"
	"time"

	"github.com/itspeasi/etds-project/internal/domain"
)

// AnalyticsRepo runs the aggregation queries behind the reporting surface.
type AnalyticsRepo interface {
	TopArtists(ctx context.Context, limit int) ([]*domain.ArtistSales, error)
}

// SnapshotCache stores serialized aggregation results with a TTL, mirroring
// the short-lived snapshot records the reporting service keeps.
type SnapshotCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
