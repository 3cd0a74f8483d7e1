package game

import (
	"context"
	"log/slog"

	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

const (
	// MaxAttempts is the number of recorded attempts after which a player is
	// locked out of a case.
	MaxAttempts = 5
	// EvidenceThreshold is the minimum evidence total a complete success
	// requires.
	EvidenceThreshold = 50
)

type OutcomeKind string

const (
	OutcomeSuccess              OutcomeKind = "success"
	OutcomeInsufficientEvidence OutcomeKind = "insufficient_evidence"
	OutcomeWrongSuspect         OutcomeKind = "wrong_suspect"
	OutcomeLockedOut            OutcomeKind = "locked_out"
	OutcomeRejected             OutcomeKind = "rejected"
)

// User-facing outcome messages. A rejection explains what could not be
// processed; everything else is a normal game result.
const (
	msgMissingCase          = "No case selected."
	msgReportNotFound       = "The selected report could not be found."
	msgReportWrongCase      = "The selected report does not belong to this case."
	msgRecordNotFound       = "The selected registry record could not be found."
	msgCaseNotFound         = "This case could not be found."
	msgCaseClosed           = "This case is closed. Only the active case and practice cases accept accusations."
	msgLockedOut            = "You have used all five attempts for this case."
	msgSuccess              = "Outstanding work, detective. Right suspect, and the evidence makes it stick."
	msgInsufficientEvidence = "You found the right suspect, but the evidence is too thin to make it stick."
	msgWrongSuspect         = "The accusation falls apart. That is not the culprit."
)

// Submission is one accusation: a report, the registry record the player
// believes it describes, and supporting evidence. PlayerID is empty for
// guests, who are never attempt-tracked.
type Submission struct {
	PlayerID         string
	ReportID         string
	RegistryRecordID string
	CaseID           string
	EvidenceIDs      []string
}

// Verdict is the adjudication result returned to the player.
type Verdict struct {
	Kind           OutcomeKind `json:"outcomeKind"`
	Message        string      `json:"message"`
	CorrectSuspect bool        `json:"correctSuspect"`
	EvidenceValue  int64       `json:"evidenceValue"`
	EvidenceIDs    []string    `json:"evidenceIds"`
}

// Adjudicator cross-references a report, a registry record and an evidence
// bundle into a verdict, and keeps per-player attempt state for tracked play.
type Adjudicator struct {
	cases      *repositories.CaseRepository
	reports    *repositories.ReportRepository
	registry   *repositories.RegistryRepository
	progress   *repositories.ProgressRepository
	aggregator *Aggregator
	logger     *slog.Logger
}

func NewAdjudicator(
	cases *repositories.CaseRepository,
	reports *repositories.ReportRepository,
	registry *repositories.RegistryRepository,
	progress *repositories.ProgressRepository,
	aggregator *Aggregator,
	logger *slog.Logger,
) *Adjudicator {
	return &Adjudicator{
		cases:      cases,
		reports:    reports,
		registry:   registry,
		progress:   progress,
		aggregator: aggregator,
		logger:     logger.With("source", "Adjudicator"),
	}
}

func rejected(message string) *Verdict {
	return &Verdict{
		Kind:    OutcomeRejected,
		Message: message,
	}
}

// Submit adjudicates one accusation.
//
// Preconditions are checked in order before any evidence is computed: the case
// id must be present, the report and registry record must resolve, the case
// must be active or practice-eligible, and the report must belong to the
// submitted case. Each failure returns a rejected verdict with its own
// message, never an error; errors are reserved for store failures.
//
// For a player on the active non-practice case, the attempt counter increments
// exactly once per submission regardless of correctness, and a locked-out
// player gets the lockout verdict before evidence is ever computed. Guests and
// practice submissions leave progress untouched.
func (a *Adjudicator) Submit(ctx context.Context, submission Submission) (*Verdict, error) {
	if submission.CaseID == "" {
		return rejected(msgMissingCase), nil
	}

	report, err := a.reports.Get(ctx, submission.ReportID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return rejected(msgReportNotFound), nil
		}
		return nil, errors.Wrap(err, "get report")
	}

	record, err := a.registry.Get(ctx, submission.RegistryRecordID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return rejected(msgRecordNotFound), nil
		}
		return nil, errors.Wrap(err, "get registry record")
	}

	accusedCase, err := a.cases.Get(ctx, submission.CaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return rejected(msgCaseNotFound), nil
		}
		return nil, errors.Wrap(err, "get case")
	}
	if !accusedCase.IsActive && !accusedCase.CanBePractice {
		return rejected(msgCaseClosed), nil
	}
	// A report only accuses within its own case. Without this check, another
	// case's guilty report could be replayed against the accused case.
	if report.CaseID != submission.CaseID {
		return rejected(msgReportWrongCase), nil
	}

	// Attempts are tracked only for authenticated players on the active,
	// non-practice case. Guests and practice play retry without limit.
	tracked := submission.PlayerID != "" && accusedCase.IsActive && !accusedCase.CanBePractice
	alreadyWon := false
	if tracked {
		progress, progressErr := a.progress.Get(ctx, submission.PlayerID, submission.CaseID)
		if progressErr != nil && !errors.Is(progressErr, repositories.ErrNotFound) {
			return nil, errors.Wrap(progressErr, "get progress")
		}
		if progress != nil {
			alreadyWon = progress.HasWon
			if !alreadyWon && progress.Attempts >= MaxAttempts {
				return &Verdict{Kind: OutcomeLockedOut, Message: msgLockedOut}, nil
			}
		}
		if !alreadyWon {
			if _, err = a.progress.IncrementAttempt(ctx, submission.PlayerID, submission.CaseID); err != nil {
				return nil, errors.Wrap(err, "increment attempt")
			}
		}
	}

	// The accused identity is the registry record's back-reference; the report
	// names who the narrative describes. A filler record with no back-reference
	// can never be a correct accusation.
	correctSuspect := record.SuspectID != "" &&
		record.SuspectID == report.SuspectID &&
		report.Guilty

	tally, err := a.aggregator.Aggregate(ctx, submission.EvidenceIDs, record.SuspectID)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate evidence")
	}

	verdict := &Verdict{
		CorrectSuspect: correctSuspect,
		EvidenceValue:  tally.Total,
		EvidenceIDs:    tally.ValidatedIDs,
	}
	switch {
	case correctSuspect && tally.Total >= EvidenceThreshold && len(tally.ValidatedIDs) > 0:
		verdict.Kind = OutcomeSuccess
		verdict.Message = msgSuccess
		if tracked {
			if _, err = a.progress.SetWin(ctx, submission.PlayerID, submission.CaseID); err != nil {
				return nil, errors.Wrap(err, "set win")
			}
		}
	case correctSuspect:
		verdict.Kind = OutcomeInsufficientEvidence
		verdict.Message = msgInsufficientEvidence
	default:
		verdict.Kind = OutcomeWrongSuspect
		verdict.Message = msgWrongSuspect
	}

	a.logger.LogAttrs(ctx, slog.LevelDebug, "adjudicated accusation",
		slog.String("case_id", submission.CaseID),
		slog.String("outcome", string(verdict.Kind)),
		slog.Int64("evidence_value", verdict.EvidenceValue))

	return verdict, nil
}
