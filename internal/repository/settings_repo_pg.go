package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	GetPricingLevel(ctx context.Context) (int, error)
	UpdatePricingLevel(ctx context.Context, level int) error
}

type PGSettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) SettingsRepository {
	return &PGSettingsRepository{db: db}
}

func (r *PGSettingsRepository) GetPricingLevel(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT current_pricing_level FROM settings WHERE id=1`)
	var level int
	if err := row.Scan(&level); err != nil {
		return 0, err
	}
	return level, nil
}

func (r *PGSettingsRepository) UpdatePricingLevel(ctx context.Context, level int) error {
	_, err := r.db.Exec(ctx, `INSERT INTO settings (id, current_pricing_level, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET current_pricing_level = $1, updated_at = now()`, level)
	return err
}

var _ SettingsRepository = (*PGSettingsRepository)(nil)
