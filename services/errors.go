package services

import "errors"

// Sentinel errors returned by the services layer. Controllers match on
// these to pick a status code and user-facing message; none of them is
// fatal to the process.
var (
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrEntryNotFound       = errors.New("entry_not_found")
	ErrFolioNotFound       = errors.New("folio_not_found")

	ErrInvalidTransition = errors.New("invalid_transition")
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrInvalidPax        = errors.New("invalid_pax")

	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrEmptyDescription   = errors.New("empty_description")
	ErrEmptyReason        = errors.New("empty_reason")
	ErrInvalidAdjustment  = errors.New("invalid_adjustment_type")
	ErrNotRectifiable     = errors.New("entry_not_rectifiable")
	ErrInvalidBillingType = errors.New("invalid_billing_type")
)
