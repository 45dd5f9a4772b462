package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "forms-backend/pkg/errors"
)

// acquireConn takes one connection from the bounded pool with a timeout.
// Callers must release it on every exit path (defer conn.Release()).
// A timed-out acquisition means the pool is saturated, which is the only
// backpressure signal this system has.
func acquireConn(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrPoolExhausted, err)
		}
		return nil, err
	}
	return conn, nil
}
