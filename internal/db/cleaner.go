package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartDeletedBookCleaner purges soft-deleted books older than retention with interval
func StartDeletedBookCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM books
                     WHERE deleted = true
                       AND deleted_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to clean soft-deleted books", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned soft-deleted books", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
