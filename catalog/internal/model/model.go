package model

import "fmt"

type Identity uint8

const (
	NotThisBook Identity = iota + 1
	NotThisHolder
	NotThisDate
	Match
)

func (i Identity) String() string {
	switch i {
	case NotThisBook:
		return "NOT_THIS_BOOK"
	case NotThisHolder:
		return "NOT_THIS_HOLDER"
	case NotThisDate:
		return "NOT_THIS_DATE"
	case Match:
		return "MATCH"
	}
	return "UNKNOWN"
}

// Reservation holds a book for a user over the inclusive range [From, To].
type Reservation struct {
	ID     int    `json:"id"`
	From   int    `json:"from"`
	To     int    `json:"to"`
	Book   string `json:"book"`
	Holder string `json:"holder"`
}

func NewReservation(id, from, to int, book, holder string) *Reservation {
	return &Reservation{
		ID:     id,
		From:   from,
		To:     to,
		Book:   book,
		Holder: holder,
	}
}

// Overlapping reports whether both reservations are for the same book and
// share at least one date.
func (r *Reservation) Overlapping(other *Reservation) bool {
	return r.Book == other.Book &&
		r.From <= other.To &&
		other.From <= r.To
}

func (r *Reservation) Includes(date int) bool {
	return r.From <= date && date <= r.To
}

func (r *Reservation) Identify(date int, book, holder string) Identity {
	if book != r.Book {
		return NotThisBook
	}
	if holder != r.Holder {
		return NotThisHolder
	}
	if !r.Includes(date) {
		return NotThisDate
	}
	return Match
}

func (r *Reservation) ChangeFor(holder string) {
	r.Holder = holder
}

func (r *Reservation) String() string {
	return fmt.Sprintf("reservation %d of %s from %d to %d for %s", r.ID, r.Book, r.From, r.To, r.Holder)
}

type Book struct {
	Name   string `json:"name"`
	Copies int    `json:"copies"`
}

type User struct {
	Name string `json:"name"`
}

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateBookRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateReservationRequest struct {
	Holder string `json:"holder" validate:"required"`
	Book   string `json:"book" validate:"required"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

type ChangeReservationRequest struct {
	Holder    string `json:"holder" validate:"required"`
	Book      string `json:"book" validate:"required"`
	Date      int    `json:"date"`
	NewHolder string `json:"newHolder" validate:"required"`
}

type CheckReservationResponse struct {
	Exists bool `json:"exists"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
