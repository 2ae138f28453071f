package handler

import (
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/presenter"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	RegisterUser(name string) error
	RegisterBook(name string) int
	CopyCount(book string) int
	IsRegisteredUser(name string) bool
	Reserve(holder, book string, from, to int) (model.Reservation, error)
	CheckReservation(holder, book string, date int) bool
	ChangeReservation(holder, book string, date int, newHolder string) error
	Reservations(holder string) []model.Reservation
}

type EventLog interface {
	Log(ev kafka.ReservationEvent) error
}

var (
	_ CatalogService = (*service.Catalog)(nil)
	_ CatalogService = (*presenter.Printer)(nil)
	_ EventLog       = kafka.Nop{}
)
