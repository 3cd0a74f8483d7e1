package models

// Case is a solvable mystery. At most one case is active at a time, which is
// enforced by the authoring tooling, not by this application.
type Case struct {
	ID            string `db:"id"`
	CaseNumber    string `db:"case_number"`
	Title         string `db:"title"`
	Victims       string `db:"victims"`
	IncidentDate  string `db:"incident_date"`
	Location      string `db:"location"`
	Details       string `db:"details"`
	Objective     string `db:"objective"`
	Difficulty    string `db:"difficulty"`
	IsActive      bool   `db:"is_active"`
	CanBePractice bool   `db:"can_be_practice"`
}

// Report is an anonymized witness report belonging to a case. Exactly one
// report per case describes the true culprit.
type Report struct {
	ID          string `db:"id"`
	CaseID      string `db:"case_id"`
	SuspectID   string `db:"suspect_id"`
	Description string `db:"description"`
	Guilty      bool   `db:"guilty"`
	SortOrder   int64  `db:"sort_order"`
}
