package presenter

import (
	"fmt"
	"io"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Library interface {
	RegisterUser(name string) error
	RegisterBook(name string) int
	CopyCount(book string) int
	IsRegisteredUser(name string) bool
	Reserve(holder, book string, from, to int) (model.Reservation, error)
	CheckReservation(holder, book string, date int) bool
	ChangeReservation(holder, book string, date int, newHolder string) error
	Reservations(holder string) []model.Reservation
}

// Printer decorates a Library: every call is passed through unchanged and its
// outcome is written to out as a human-readable line.
type Printer struct {
	lib Library
	out io.Writer
	log *zap.Logger
}

func New(lib Library, out io.Writer, log *zap.Logger) *Printer {
	return &Printer{
		lib: lib,
		out: out,
		log: log.Named("presenter"),
	}
}

func (p *Printer) RegisterUser(name string) error {
	err := p.lib.RegisterUser(name)
	switch {
	case err == nil:
		p.print("User %s created.", name)
	case errors.Is(err, errs.ErrUserAlreadyExists):
		p.print("User not created, user with name %s already exists.", name)
	}
	return err
}

func (p *Printer) RegisterBook(name string) int {
	copies := p.lib.RegisterBook(name)
	p.print("Book %s added. We have %d copies of the book.", name, copies)
	return copies
}

func (p *Printer) CopyCount(book string) int {
	return p.lib.CopyCount(book)
}

func (p *Printer) IsRegisteredUser(name string) bool {
	return p.lib.IsRegisteredUser(name)
}

func (p *Printer) Reserve(holder, book string, from, to int) (model.Reservation, error) {
	r, err := p.lib.Reserve(holder, book, from, to)
	if err == nil {
		p.print("Reservation %d included.", r.ID)
		return r, nil
	}
	p.print("We cannot reserve book %s for %s from %d to %d. %s", book, holder, from, to, reason(err))
	return r, err
}

func reason(err error) string {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		return "User does not exist."
	case errors.Is(err, errs.ErrInvalidRange):
		return "Incorrect dates."
	case errors.Is(err, errs.ErrNoCopies):
		return "We do not have that book."
	case errors.Is(err, errs.ErrCapacityExceeded):
		return "We do not have enough books."
	}
	return err.Error()
}

func (p *Printer) CheckReservation(holder, book string, date int) bool {
	ok := p.lib.CheckReservation(holder, book, date)
	state := "exists"
	if !ok {
		state = "does not exist"
	}
	p.print("Reservation for %s of %s on %d %s.", holder, book, date, state)
	return ok
}

func (p *Printer) ChangeReservation(holder, book string, date int, newHolder string) error {
	err := p.lib.ChangeReservation(holder, book, date, newHolder)
	switch {
	case err == nil:
		p.print("Reservation for %s of %s on %d changed to %s.", holder, book, date, newHolder)
	case errors.Is(err, errs.ErrReservationNotFound):
		p.print("Reservation for %s of %s on %d does not exist.", holder, book, date)
	case errors.Is(err, errs.ErrInvalidNewHolder):
		p.print("Cannot change the reservation as %s does not exist.", newHolder)
	}
	return err
}

func (p *Printer) Reservations(holder string) []model.Reservation {
	return p.lib.Reservations(holder)
}

func (p *Printer) print(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, err := fmt.Fprintln(p.out, msg); err != nil {
		p.log.Warn("print", zap.Error(err))
	}
	p.log.Info(msg)
}
