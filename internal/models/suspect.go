package models

// SuspectProfile is the canonical person entity that reports, registry records
// and evidence items all reference. Its descriptive attributes are
// intentionally fuzzy free text shown to the player, never matched against.
type SuspectProfile struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Aliases      string `db:"aliases"`
	AgeRange     string `db:"age_range"`
	HeightRange  string `db:"height_range"`
	WeightRange  string `db:"weight_range"`
	HairColor    string `db:"hair_color"`
	EyeColor     string `db:"eye_color"`
	LicensePlate string `db:"license_plate"`
}
