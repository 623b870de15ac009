package postgres

import (
	"context"
	"database/sql"
	"time"

	"onerental-backend/internal/repository"
)

type dismissalRepository struct {
	db *sql.DB
}

func NewDismissalRepository(db *sql.DB) repository.DismissalRepository {
	return &dismissalRepository{db: db}
}

func (r *dismissalRepository) GetUntil(ctx context.Context, ownerID, key string) (time.Time, bool, error) {
	var until time.Time
	query := `SELECT dismissed_until FROM insight_dismissals WHERE owner_id = $1 AND key = $2`
	err := r.db.QueryRowContext(ctx, query, ownerID, key).Scan(&until)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return until, true, nil
}

func (r *dismissalRepository) SetUntil(ctx context.Context, ownerID, key string, until time.Time) error {
	query := `INSERT INTO insight_dismissals (owner_id, key, dismissed_until)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (owner_id, key) DO UPDATE SET dismissed_until = EXCLUDED.dismissed_until`
	_, err := r.db.ExecContext(ctx, query, ownerID, key, until)
	return err
}

func (r *dismissalRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM insight_dismissals WHERE dismissed_until < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
