package repositories

import "github.com/Asantae/Cluify-sub000/internal/errors"

// ErrNotFound is returned when a lookup matches no record. Callers distinguish
// it from store failures with errors.Is.
var ErrNotFound = errors.NewSentinel("record not found")
