package game

import (
	"context"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

// EvidenceTally is the result of scoring a set of submitted evidence ids
// against an accused suspect.
type EvidenceTally struct {
	// Total is the summed evidence value of every validated item.
	Total int64
	// ValidatedIDs is the subset of submitted ids that counted.
	ValidatedIDs []string
}

// Aggregator scores evidence submissions. It is a pure read/compute component
// with no side effects.
type Aggregator struct {
	evidence *repositories.EvidenceRepository
	logger   *slog.Logger
}

func NewAggregator(evidence *repositories.EvidenceRepository, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		evidence: evidence,
		logger:   logger.With("source", "Aggregator"),
	}
}

// Aggregate resolves the submitted ids against the five evidence collections
// and totals the values of the items that validate. Ids that resolve nowhere
// are silently ignored.
//
// Phone messages, social posts, search history and purchases count in full no
// matter whose person id they carry. Police records are the one kind players
// can misattribute by searching broadly, so a police record validates only
// when it belongs to the accused suspect; otherwise it is excluded from both
// the total and the validated set.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	evidenceIDs []string,
	accusedSuspectID string,
) (EvidenceTally, error) {
	var tally EvidenceTally
	items, err := a.evidence.FindByIDs(ctx, evidenceIDs)
	if err != nil {
		return tally, errors.Wrap(err, "resolve evidence")
	}
	for _, item := range items {
		if item.Kind() == models.EvidenceKindPoliceRecord && item.OwnerID() != accusedSuspectID {
			continue
		}
		tally.Total += item.Value()
		tally.ValidatedIDs = append(tally.ValidatedIDs, item.EvidenceID())
	}
	return tally, nil
}
