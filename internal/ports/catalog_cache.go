package ports

import (
	"context"
	"time"
)

// CatalogCache stores the last fetched course catalog so the browse command
// works without re-hitting a cold backend. Load returns
// domain.ErrCatalogNotCached when nothing has been saved yet.
type CatalogCache interface {
	Load(ctx context.Context) ([]string, time.Time, error)
	Save(ctx context.Context, courses []string, fetchedAt time.Time) error
}

// Clock abstracts time.Now for cache staleness checks.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
