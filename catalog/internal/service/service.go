package service

import (
	"sort"
	"sync"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"go.uber.org/zap"
)

// Catalog owns registered users, per-book copy counts and granted
// reservations. Reservations are kept sorted by From; ties keep insertion order.
type Catalog struct {
	mu sync.Mutex

	users        map[string]struct{}
	books        map[string]int
	reservations []*model.Reservation
	lastID       int

	log *zap.Logger
}

func NewCatalog(log *zap.Logger) *Catalog {
	return &Catalog{
		users: make(map[string]struct{}),
		books: make(map[string]int),
		log:   log.Named("catalog"),
	}
}

func (c *Catalog) RegisterUser(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.users[name]; ok {
		return errs.ErrUserAlreadyExists
	}
	c.users[name] = struct{}{}
	return nil
}

func (c *Catalog) RegisterBook(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books[name]++
	return c.books[name]
}

func (c *Catalog) CopyCount(book string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.books[book]
}

func (c *Catalog) IsRegisteredUser(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.users[name]
	return ok
}

// Reserve grants book to holder over [from, to] unless that would leave more
// active reservations of the book than copies at some date.
func (c *Catalog) Reserve(holder, book string, from, to int) (model.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.users[holder]; !ok {
		return model.Reservation{}, errs.ErrUserNotFound
	}
	if from > to {
		return model.Reservation{}, errs.ErrInvalidRange
	}
	copies := c.books[book]
	if copies == 0 {
		return model.Reservation{}, errs.ErrNoCopies
	}

	candidate := model.NewReservation(c.lastID+1, from, to, book, holder)
	if !c.admits(candidate, copies) {
		c.log.Debug("capacity exceeded",
			zap.String("book", book),
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Int("copies", copies))
		return model.Reservation{}, errs.ErrCapacityExceeded
	}

	c.lastID = candidate.ID
	c.reservations = append(c.reservations, candidate)
	sort.SliceStable(c.reservations, func(i, j int) bool {
		return c.reservations[i].From < c.reservations[j].From
	})
	return *candidate, nil
}

// admits counts active reservations only at start dates inside the
// candidate's range: counts change at range starts, and dates outside the
// candidate are not affected by it.
func (c *Catalog) admits(candidate *model.Reservation, copies int) bool {
	relevant := []*model.Reservation{candidate}
	for _, r := range c.reservations {
		if candidate.Overlapping(r) {
			relevant = append(relevant, r)
		}
	}

	checked := make(map[int]struct{}, len(relevant))
	for _, start := range relevant {
		p := start.From
		if _, ok := checked[p]; ok || !candidate.Includes(p) {
			continue
		}
		checked[p] = struct{}{}

		active := 0
		for _, r := range relevant {
			if r.Includes(p) {
				active++
			}
		}
		if active > copies {
			return false
		}
	}
	return true
}

func (c *Catalog) CheckReservation(holder, book string, date int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(holder, book, date) != nil
}

// ChangeReservation hands the first reservation of book held by holder on
// date over to newHolder.
func (c *Catalog) ChangeReservation(holder, book string, date int, newHolder string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.find(holder, book, date)
	if r == nil {
		return errs.ErrReservationNotFound
	}
	if _, ok := c.users[newHolder]; !ok {
		return errs.ErrInvalidNewHolder
	}
	r.ChangeFor(newHolder)
	return nil
}

// Reservations returns copies of the granted reservations in From order,
// limited to holder unless holder is empty.
func (c *Catalog) Reservations(holder string) []model.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.Reservation, 0, len(c.reservations))
	for _, r := range c.reservations {
		if holder != "" && r.Holder != holder {
			continue
		}
		items = append(items, *r)
	}
	return items
}

func (c *Catalog) find(holder, book string, date int) *model.Reservation {
	for _, r := range c.reservations {
		if r.Identify(date, book, holder) == model.Match {
			return r
		}
	}
	return nil
}
