package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

type ReportRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewReportRepository(dbs *db.Database, logger *slog.Logger) *ReportRepository {
	return &ReportRepository{
		dbs:    dbs,
		logger: logger.With("source", "ReportRepository"),
	}
}

func (r *ReportRepository) Get(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	stmt := `SELECT id, case_id, suspect_id, description, guilty, sort_order FROM reports WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &report, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "report not found", slog.String("report_id", id))
		}
		return nil, errors.Wrap(err, "read report")
	}
	return &report, nil
}

// ListByCase returns the case's reports in their authored order.
func (r *ReportRepository) ListByCase(ctx context.Context, caseID string) ([]models.Report, error) {
	var reports []models.Report
	stmt := `SELECT id, case_id, suspect_id, description, guilty, sort_order
FROM reports
WHERE case_id = ?
ORDER BY sort_order`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &reports, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "list reports", slog.String("case_id", caseID))
	}
	return reports, nil
}
