package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

type CaseRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewCaseRepository(dbs *db.Database, logger *slog.Logger) *CaseRepository {
	return &CaseRepository{
		dbs:    dbs,
		logger: logger.With("source", "CaseRepository"),
	}
}

func (r *CaseRepository) Get(ctx context.Context, id string) (*models.Case, error) {
	var c models.Case
	stmt := `SELECT id, case_number, title, victims, incident_date, location, details, objective, difficulty,
       is_active, can_be_practice
FROM cases
WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &c, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "case not found", slog.String("case_id", id))
		}
		return nil, errors.Wrap(err, "read case")
	}
	return &c, nil
}

// Active returns the single case flagged active. The singleton property is an
// external invariant maintained by the authoring tooling; this method only
// reads the flag.
func (r *CaseRepository) Active(ctx context.Context) (*models.Case, error) {
	var c models.Case
	stmt := `SELECT id, case_number, title, victims, incident_date, location, details, objective, difficulty,
       is_active, can_be_practice
FROM cases
WHERE is_active = 1
LIMIT 1`
	if err := r.dbs.ReadOnly.GetContext(ctx, &c, stmt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "no active case")
		}
		return nil, errors.Wrap(err, "read active case")
	}
	return &c, nil
}

// SetActive flips the active flag to the given case and clears it everywhere
// else in a single transaction. Only the authoring CLI calls this.
func (r *CaseRepository) SetActive(ctx context.Context, id string) error {
	tx, err := r.dbs.ReadWrite.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback transaction",
				errors.SlogError(rollbackErr))
		}
	}()

	if _, err = tx.ExecContext(ctx, `UPDATE cases SET is_active = 0 WHERE is_active = 1`); err != nil {
		return errors.Wrap(err, "clear active flag")
	}
	res, err := tx.ExecContext(ctx, `UPDATE cases SET is_active = 1 WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "set active flag")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errors.Wrap(ErrNotFound, "case not found", slog.String("case_id", id))
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}
