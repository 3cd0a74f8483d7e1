package models

// RegistryRecord is a vehicle-registration-style record with concrete,
// queryable physical attributes.
//
// SuspectID is a weak back-reference to a SuspectProfile and may be empty for
// generated filler records. It must never be treated as ownership; several
// records may point at the same profile.
type RegistryRecord struct {
	ID        string `db:"id"`
	SuspectID string `db:"suspect_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Age       int64  `db:"age"`
	Weight    int64  `db:"weight"`
	Sex       string `db:"sex"`
	HairColor string `db:"hair_color"`
	EyeColor  string `db:"eye_color"`
	// Height is display text such as 5'10", not a sortable number.
	Height       string `db:"height"`
	LicensePlate string `db:"license_plate"`
}
