package service

import "errors"

// Recoverable-by-caller error conditions surfaced by the services. Handlers
// map these onto HTTP statuses.
var (
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrIncompleteSummary    = errors.New("incomplete summary")
	ErrInvalidConfiguration = errors.New("invalid salary configuration")
	ErrStoreUnavailable     = errors.New("attendance store unavailable")
)
