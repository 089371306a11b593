package service

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindReferential
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindReferential:
		return "referenced entity not found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown error"
	}
}

// Error is a classified service failure. A kind sentinel (no message)
// matches every Error of that kind under errors.Is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

var (
	ErrValidation  = &Error{Kind: KindValidation}
	ErrReferential = &Error{Kind: KindReferential}
	ErrConflict    = &Error{Kind: KindConflict}
)

var (
	ErrInvalidDateRange   = &Error{KindValidation, "start date must be before end date"}
	ErrInvalidPartySize   = &Error{KindValidation, "party size must be at least 1"}
	ErrInvalidSearchRange = &Error{KindValidation, "from date must be before to date"}
	ErrInvalidCost        = &Error{KindValidation, "cost must not be negative"}
	ErrInvalidCostRange   = &Error{KindValidation, "cost range must be non-negative with min <= max"}
	ErrNameRequired       = &Error{KindValidation, "name and country are required"}
	ErrTouristRequired    = &Error{KindValidation, "first name, last name and email are required"}

	ErrTouristNotFound     = &Error{KindReferential, "tourist not found"}
	ErrDestinationNotFound = &Error{KindReferential, "destination not found"}

	ErrOverlappingReservation = &Error{KindConflict, "tourist already has a reservation overlapping these dates"}
	ErrDuplicateDestination   = &Error{KindConflict, "a destination with this name already exists in this country"}
	ErrDuplicateEmail         = &Error{KindConflict, "a tourist with this email already exists"}
	ErrDestinationInUse       = &Error{KindConflict, "destination has reservations and cannot be deleted"}
	ErrTouristInUse           = &Error{KindConflict, "tourist has reservations and cannot be deleted"}
)
