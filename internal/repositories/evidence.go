package repositories

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

// EvidenceRepository resolves evidence ids across the five independent
// evidence collections.
type EvidenceRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewEvidenceRepository(dbs *db.Database, logger *slog.Logger) *EvidenceRepository {
	return &EvidenceRepository{
		dbs:    dbs,
		logger: logger.With("source", "EvidenceRepository"),
	}
}

// FindByIDs resolves the given ids against every evidence collection and
// returns the items that exist. Ids that resolve nowhere are silently absent
// from the result; duplicate ids resolve once.
func (r *EvidenceRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Evidence, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var items []models.Evidence

	var phoneMessages []models.PhoneMessage
	stmt := `SELECT id, person_id, sender, recipient, message, sent_at, evidence_value FROM phone_messages
WHERE id IN (?)`
	if err := r.selectIn(ctx, &phoneMessages, stmt, ids); err != nil {
		return nil, errors.Wrap(err, "resolve phone messages")
	}
	for _, item := range phoneMessages {
		items = append(items, item)
	}

	var socialPosts []models.SocialPost
	stmt = `SELECT id, person_id, handle, content, posted_at, evidence_value FROM social_posts WHERE id IN (?)`
	if err := r.selectIn(ctx, &socialPosts, stmt, ids); err != nil {
		return nil, errors.Wrap(err, "resolve social posts")
	}
	for _, item := range socialPosts {
		items = append(items, item)
	}

	var searchEntries []models.SearchHistoryEntry
	stmt = `SELECT id, person_id, query, searched_at, evidence_value FROM search_history WHERE id IN (?)`
	if err := r.selectIn(ctx, &searchEntries, stmt, ids); err != nil {
		return nil, errors.Wrap(err, "resolve search history")
	}
	for _, item := range searchEntries {
		items = append(items, item)
	}

	var purchases []models.Purchase
	stmt = `SELECT id, person_id, item, store, purchased_at, evidence_value FROM purchases WHERE id IN (?)`
	if err := r.selectIn(ctx, &purchases, stmt, ids); err != nil {
		return nil, errors.Wrap(err, "resolve purchases")
	}
	for _, item := range purchases {
		items = append(items, item)
	}

	var policeRecords []models.PoliceRecord
	stmt = `SELECT id, person_id, case_number, offense, recorded_at, evidence_value FROM police_records
WHERE id IN (?)`
	if err := r.selectIn(ctx, &policeRecords, stmt, ids); err != nil {
		return nil, errors.Wrap(err, "resolve police records")
	}
	for _, item := range policeRecords {
		items = append(items, item)
	}

	return items, nil
}

func (r *EvidenceRepository) selectIn(ctx context.Context, dest any, stmt string, ids []string) error {
	query, args, err := sqlx.In(stmt, ids)
	if err != nil {
		return errors.Wrap(err, "expand IN clause")
	}
	if err = r.dbs.ReadOnly.SelectContext(ctx, dest, r.dbs.ReadOnly.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "select")
	}
	return nil
}
