package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-catalog/catalog/docs"
)

type Handler struct {
	catalogSvc CatalogService
	events     EventLog
	log        *zap.Logger
}

func New(catalogSvc CatalogService, events EventLog, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		events:     events,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.POST("/users", h.CreateUser)
	api.GET("/users/:name", h.GetUser)

	api.POST("/books", h.CreateBook)
	api.GET("/books/:name", h.GetBook)

	api.GET("/reservations", h.GetReservations)
	api.POST("/reservations", h.CreateReservation)
	api.PATCH("/reservations", h.ChangeReservation)
	api.GET("/reservations/check", h.CheckReservation)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateUser
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "user"
// @Success 201 {object} model.User
// @Failure 409 {object} model.MessageResponse
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.RegisterUser(req.Name); err != nil {
		if errors.Is(err, errs.ErrUserAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, model.User{Name: req.Name})
}

// GetUser
// @Summary Check that a user is registered
// @Tags users
// @Produce json
// @Param name path string true "user name"
// @Success 200 {object} model.User
// @Failure 404 {object} model.MessageResponse
// @Router /users/{name} [get]
func (h *Handler) GetUser(c echo.Context) error {
	name := c.Param("name")
	if !h.catalogSvc.IsRegisteredUser(name) {
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrUserNotFound.Error())
	}
	return c.JSON(http.StatusOK, model.User{Name: name})
}

// CreateBook
// @Summary Add a copy of a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 200 {object} model.Book
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	copies := h.catalogSvc.RegisterBook(req.Name)
	return c.JSON(http.StatusOK, model.Book{Name: req.Name, Copies: copies})
}

// GetBook
// @Summary Number of copies of a book
// @Tags books
// @Produce json
// @Param name path string true "book name"
// @Success 200 {object} model.Book
// @Router /books/{name} [get]
func (h *Handler) GetBook(c echo.Context) error {
	name := c.Param("name")
	return c.JSON(http.StatusOK, model.Book{Name: name, Copies: h.catalogSvc.CopyCount(name)})
}

// GetReservations
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param holder query string false "holder"
// @Success 200 {array} model.Reservation
// @Router /reservations [get]
func (h *Handler) GetReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalogSvc.Reservations(c.QueryParam("holder")))
}

// CreateReservation
// @Summary Reserve a book
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body model.CreateReservationRequest true "reservation"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} model.MessageResponse
// @Failure 404 {object} model.MessageResponse
// @Failure 409 {object} model.MessageResponse
// @Failure 422 {object} model.MessageResponse
// @Router /reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.catalogSvc.Reserve(req.Holder, req.Book, req.From, req.To)
	if err != nil {
		return echo.NewHTTPError(statusCode(err), err.Error())
	}

	h.publish(kafka.ReservationEvent{
		Type:          kafka.ReservationCreated,
		ReservationID: res.ID,
		Book:          res.Book,
		Holder:        res.Holder,
		From:          res.From,
		To:            res.To,
	})
	return c.JSON(http.StatusOK, res)
}

// ChangeReservation
// @Summary Hand a reservation over to another user
// @Tags reservations
// @Accept json
// @Param change body model.ChangeReservationRequest true "change"
// @Success 200
// @Failure 404 {object} model.MessageResponse
// @Failure 422 {object} model.MessageResponse
// @Router /reservations [patch]
func (h *Handler) ChangeReservation(c echo.Context) error {
	var req model.ChangeReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.catalogSvc.ChangeReservation(req.Holder, req.Book, req.Date, req.NewHolder); err != nil {
		return echo.NewHTTPError(statusCode(err), err.Error())
	}

	h.publish(kafka.ReservationEvent{
		Type:       kafka.ReservationChanged,
		Book:       req.Book,
		Holder:     req.NewHolder,
		PrevHolder: req.Holder,
		Date:       req.Date,
	})
	return c.NoContent(http.StatusOK)
}

// CheckReservation
// @Summary Check that a user holds a book on a date
// @Tags reservations
// @Produce json
// @Param holder query string true "holder"
// @Param book query string true "book"
// @Param date query int true "date"
// @Success 200 {object} model.CheckReservationResponse
// @Router /reservations/check [get]
func (h *Handler) CheckReservation(c echo.Context) error {
	holder := c.QueryParam("holder")
	if holder == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "holder is required")
	}
	book := c.QueryParam("book")
	if book == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "book is required")
	}
	date, err := strconv.Atoi(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date is invalid")
	}
	exists := h.catalogSvc.CheckReservation(holder, book, date)
	return c.JSON(http.StatusOK, model.CheckReservationResponse{Exists: exists})
}

func (h *Handler) publish(ev kafka.ReservationEvent) {
	if err := h.events.Log(ev); err != nil {
		h.log.Warn("publish reservation event",
			zap.String("type", string(ev.Type)),
			zap.String("book", ev.Book),
			zap.Error(err))
	}
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidNewHolder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNoCopies):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
