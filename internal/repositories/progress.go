package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

// ProgressRepository persists per-(player, case) attempt state. Both mutations
// are single atomic upserts so concurrent submissions by the same player can
// never lose an update.
type ProgressRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewProgressRepository(dbs *db.Database, logger *slog.Logger) *ProgressRepository {
	return &ProgressRepository{
		dbs:    dbs,
		logger: logger.With("source", "ProgressRepository"),
	}
}

func (r *ProgressRepository) Get(ctx context.Context, playerID, caseID string) (*models.CaseProgress, error) {
	var progress models.CaseProgress
	stmt := `SELECT id, player_id, case_id, attempts, has_won FROM case_progress WHERE player_id = ? AND case_id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &progress, stmt, playerID, caseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "progress not found",
				slog.String("player_id", playerID), slog.String("case_id", caseID))
		}
		return nil, errors.Wrap(err, "read progress")
	}
	return &progress, nil
}

// IncrementAttempt records one attempt and returns the resulting row. The
// record is created on first use; attempts only ever goes up.
func (r *ProgressRepository) IncrementAttempt(ctx context.Context, playerID, caseID string) (*models.CaseProgress, error) {
	var progress models.CaseProgress
	stmt := `INSERT INTO case_progress (player_id, case_id, attempts, has_won)
VALUES (?, ?, 1, 0)
ON CONFLICT (player_id, case_id) DO UPDATE SET attempts = attempts + 1
RETURNING id, player_id, case_id, attempts, has_won`
	if err := r.dbs.ReadWrite.GetContext(ctx, &progress, stmt, playerID, caseID); err != nil {
		return nil, errors.Wrap(err, "increment attempt",
			slog.String("player_id", playerID), slog.String("case_id", caseID))
	}
	return &progress, nil
}

// SetWin marks the case as won for the player. has_won never transitions back
// to false and recorded attempts are left untouched.
func (r *ProgressRepository) SetWin(ctx context.Context, playerID, caseID string) (*models.CaseProgress, error) {
	var progress models.CaseProgress
	stmt := `INSERT INTO case_progress (player_id, case_id, attempts, has_won)
VALUES (?, ?, 0, 1)
ON CONFLICT (player_id, case_id) DO UPDATE SET has_won = 1
RETURNING id, player_id, case_id, attempts, has_won`
	if err := r.dbs.ReadWrite.GetContext(ctx, &progress, stmt, playerID, caseID); err != nil {
		return nil, errors.Wrap(err, "set win",
			slog.String("player_id", playerID), slog.String("case_id", caseID))
	}
	return &progress, nil
}
