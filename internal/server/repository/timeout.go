package repository

import (
	"context"
	"time"
)

// withQueryTimeout ограничивает запрос к базе таймаутом db.query_timeout.
// Нулевой таймаут означает отсутствие лимита.
func withQueryTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
