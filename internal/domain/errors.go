package domain

import "errors"

var (
	// ErrCelebrantUnknown is returned when a tribute or description targets
	// a member that has no birthday record yet.
	ErrCelebrantUnknown = errors.New("celebrant has no birthday record")

	// ErrMemberNotFound is returned when a name cannot be resolved to
	// exactly one workspace member.
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidDate is returned for birth dates that are not a valid DD-MM.
	ErrInvalidDate = errors.New("invalid birth date, expected DD-MM")
)
