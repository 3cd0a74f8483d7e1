package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"unicode"

	"github.com/jmoiron/sqlx"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/models"
)

type RegistryRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewRegistryRepository(dbs *db.Database, logger *slog.Logger) *RegistryRepository {
	return &RegistryRepository{
		dbs:    dbs,
		logger: logger.With("source", "RegistryRepository"),
	}
}

// RegistrySearch is a registry query. Every field is optional; a zero-value
// search matches every record.
type RegistrySearch struct {
	AgeStart    *int64
	AgeEnd      *int64
	WeightStart *int64
	WeightEnd   *int64
	// Height bounds are display text such as 5'10", matched inclusively after
	// parsing to inches.
	HeightStart string
	HeightEnd   string
	Sex         string
	HairColor   string
	EyeColor    string
	FirstName   string
	LastName    string
	// LicensePlate matches stored plates by normalized prefix: whitespace and
	// hyphens stripped, upper-cased.
	LicensePlate string
}

const selectRegistryColumns = `SELECT id, suspect_id, first_name, last_name, age, weight, sex, hair_color, eye_color,
       height, license_plate
FROM registry_records`

// Search returns the registry records matching the query.
//
// Age and weight ranges, sex, hair and eye color and whole-field
// case-insensitive names are evaluated by the store. Height and license plate
// are refined in memory afterwards: height because it is stored as display
// text, the plate because of prefix normalization. A height bound applies
// regardless of whether a plate term is present, and records whose stored
// height fails to parse are excluded from any height-bounded query.
func (r *RegistryRepository) Search(ctx context.Context, query RegistrySearch) ([]models.RegistryRecord, error) {
	var (
		clauses []string
		args    = map[string]any{}
	)
	if query.AgeStart != nil {
		clauses = append(clauses, "age >= :age_start")
		args["age_start"] = *query.AgeStart
	}
	if query.AgeEnd != nil {
		clauses = append(clauses, "age <= :age_end")
		args["age_end"] = *query.AgeEnd
	}
	if query.WeightStart != nil {
		clauses = append(clauses, "weight >= :weight_start")
		args["weight_start"] = *query.WeightStart
	}
	if query.WeightEnd != nil {
		clauses = append(clauses, "weight <= :weight_end")
		args["weight_end"] = *query.WeightEnd
	}
	if query.Sex != "" {
		clauses = append(clauses, "sex = :sex")
		args["sex"] = query.Sex
	}
	if query.HairColor != "" {
		clauses = append(clauses, "hair_color = :hair_color")
		args["hair_color"] = query.HairColor
	}
	if query.EyeColor != "" {
		clauses = append(clauses, "eye_color = :eye_color")
		args["eye_color"] = query.EyeColor
	}
	if query.FirstName != "" {
		clauses = append(clauses, "LOWER(first_name) = LOWER(:first_name)")
		args["first_name"] = query.FirstName
	}
	if query.LastName != "" {
		clauses = append(clauses, "LOWER(last_name) = LOWER(:last_name)")
		args["last_name"] = query.LastName
	}

	stmt := selectRegistryColumns
	if len(clauses) > 0 {
		stmt += "\nWHERE " + strings.Join(clauses, " AND ")
	}

	var (
		records []models.RegistryRecord
		rows    *sqlx.Rows
		err     error
	)
	rows, err = r.dbs.ReadOnly.NamedQueryContext(ctx, stmt, args)
	if err != nil {
		return nil, errors.Wrap(err, "query registry records")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.Error("could not close rows", errors.SlogError(closeErr))
		}
	}()
	for rows.Next() {
		var record models.RegistryRecord
		if err = rows.StructScan(&record); err != nil {
			return nil, errors.Wrap(err, "scan registry record")
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}

	records = filterByHeight(records, query.HeightStart, query.HeightEnd)
	records = filterByPlate(records, query.LicensePlate)

	return records, nil
}

func (r *RegistryRepository) Get(ctx context.Context, id string) (*models.RegistryRecord, error) {
	var record models.RegistryRecord
	stmt := selectRegistryColumns + "\nWHERE id = ?"
	if err := r.dbs.ReadOnly.GetContext(ctx, &record, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "registry record not found", slog.String("registry_record_id", id))
		}
		return nil, errors.Wrap(err, "read registry record")
	}
	return &record, nil
}

// filterByHeight keeps records whose parsed height falls within the supplied
// bounds. A bound that fails to parse matches nothing, mirroring the
// no-match-not-error contract for malformed height text.
func filterByHeight(records []models.RegistryRecord, start, end string) []models.RegistryRecord {
	if start == "" && end == "" {
		return records
	}
	var (
		lower, upper int64
		ok           bool
	)
	hasLower := start != ""
	hasUpper := end != ""
	if hasLower {
		if lower, ok = models.ParseHeight(start); !ok {
			return nil
		}
	}
	if hasUpper {
		if upper, ok = models.ParseHeight(end); !ok {
			return nil
		}
	}
	filtered := records[:0]
	for _, record := range records {
		inches, parsed := models.ParseHeight(record.Height)
		if !parsed {
			continue
		}
		if hasLower && inches < lower {
			continue
		}
		if hasUpper && inches > upper {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func filterByPlate(records []models.RegistryRecord, plate string) []models.RegistryRecord {
	normalizedQuery := normalizePlate(plate)
	if normalizedQuery == "" {
		return records
	}
	filtered := records[:0]
	for _, record := range records {
		normalized := normalizePlate(record.LicensePlate)
		if normalized == "" {
			// Blank stored plates never match a plate query.
			continue
		}
		if strings.HasPrefix(normalized, normalizedQuery) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// normalizePlate strips whitespace and hyphens and upper-cases the rest.
func normalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range plate {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
