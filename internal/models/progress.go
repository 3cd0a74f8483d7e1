package models

// CaseProgress tracks a player's attempts on a case. Unique per
// (player, case); attempts only ever increments and has_won never resets.
type CaseProgress struct {
	ID       int64  `db:"id"`
	PlayerID string `db:"player_id"`
	CaseID   string `db:"case_id"`
	Attempts int64  `db:"attempts"`
	HasWon   bool   `db:"has_won"`
}
