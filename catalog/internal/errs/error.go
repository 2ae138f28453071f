package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRange        = errors.New("incorrect dates")
	ErrNoCopies            = errors.New("no copies of the book")
	ErrCapacityExceeded    = errors.New("not enough copies of the book")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidNewHolder is returned when a reservation is handed over to an
	// unregistered user. It matches ErrUserNotFound as well.
	ErrInvalidNewHolder = fmt.Errorf("new holder: %w", ErrUserNotFound)
)
