package errors

import "errors"

var (
	// ErrUnknownMuseum marks a museum name that is not in the catalog.
	ErrUnknownMuseum = errors.New("museum not found in catalog")

	// ErrUnknownDate marks a date the museum does not offer.
	ErrUnknownDate = errors.New("date not offered by museum")

	// ErrDuplicateBooking marks a second booking for the same
	// (visitor, museum, date) triple.
	ErrDuplicateBooking = errors.New("duplicate booking for visitor and slot")

	// ErrInsufficientCapacity marks a request for more tickets than the slot
	// has left.
	ErrInsufficientCapacity = errors.New("insufficient remaining capacity")

	// ErrNotEligible marks a visitor who is not on the roster.
	ErrNotEligible = errors.New("visitor is not eligible to book")

	// ErrLockTimeout marks a slot lock that could not be acquired in time.
	ErrLockTimeout = errors.New("timed out waiting for slot lock")
)
