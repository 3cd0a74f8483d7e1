package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

type SuspectRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewSuspectRepository(dbs *db.Database, logger *slog.Logger) *SuspectRepository {
	return &SuspectRepository{
		dbs:    dbs,
		logger: logger.With("source", "SuspectRepository"),
	}
}

func (r *SuspectRepository) Get(ctx context.Context, id string) (*models.SuspectProfile, error) {
	var suspect models.SuspectProfile
	stmt := `SELECT id, name, aliases, age_range, height_range, weight_range, hair_color, eye_color, license_plate
FROM suspects
WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &suspect, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "suspect not found", slog.String("suspect_id", id))
		}
		return nil, errors.Wrap(err, "read suspect")
	}
	return &suspect, nil
}
