package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type TripSvc interface {
	CreateTrip(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error)
	GetDetails(ctx context.Context, id string) (*domain.TripDetails, error)
	List(ctx context.Context) ([]*domain.Trip, error)
}

type ReservationSvc interface {
	RequestReservation(ctx context.Context, userID, tripID string, dateSelector, qty int) (*domain.ReservationResult, error)
	JoinWaitlist(ctx context.Context, userID, tripID string) (*domain.WaitlistEntry, int, error)
	ReleaseHold(ctx context.Context, cartEntryID string) error
	Checkout(ctx context.Context, userID, cartEntryID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	CartForUser(ctx context.Context, userID string) ([]*domain.CartEntry, error)
	BookingsForUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	tripService        TripSvc
	reservationService ReservationSvc
	userService        UserSvc
}

func NewHandler(tripService TripSvc, reservationService ReservationSvc, userService UserSvc) *Handler {
	return &Handler{
		tripService:        tripService,
		reservationService: reservationService,
		userService:        userService,
	}
}

// Trips

func (h *Handler) CreateTrip(c *ginext.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.CancellationDeadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid cancellation_deadline format, expected RFC3339",
		})
		return
	}

	input := domain.CreateTripInput{
		Title:                req.Title,
		Destination:          req.Destination,
		Country:              req.Country,
		Description:          req.Description,
		BaseRooms:            req.BaseRooms,
		CancellationDeadline: deadline,
	}
	for _, v := range req.Variants {
		startsAt, err := time.Parse(time.RFC3339, v.StartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid variant starts_at, expected RFC3339"})
			return
		}
		endsAt, err := time.Parse(time.RFC3339, v.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid variant ends_at, expected RFC3339"})
			return
		}
		input.Variants = append(input.Variants, domain.CreateVariantInput{
			StartsAt: startsAt,
			EndsAt:   endsAt,
			Capacity: v.Capacity,
		})
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

func (h *Handler) GetTrip(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	details, err := h.tripService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTripDetailsResponse(details))
}

func (h *Handler) ListTrips(c *ginext.Context) {
	trips, err := h.tripService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, dto.ToTripResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.reservationService.RequestReservation(
		c.Request.Context(), req.UserID, tripID, req.DateSelector, req.Quantity,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if result.Outcome == domain.OutcomeHeld {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToReservationResponse(result))
}

func (h *Handler) JoinWaitlist(c *ginext.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	var req dto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	_, queueLen, err := h.reservationService.JoinWaitlist(c.Request.Context(), req.UserID, tripID)
	if err != nil {
		// Joining twice is a no-op signal, not a failure.
		if errors.Is(err, domain.ErrAlreadyOnWaitlist) {
			c.JSON(http.StatusOK, dto.WaitlistResponse{
				Status:      "already_on_waitlist",
				QueueLength: queueLen,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.WaitlistResponse{
		Status:      string(domain.WaitlistStatusWaiting),
		QueueLength: queueLen,
	})
}

func (h *Handler) ReleaseHold(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cart entry id"})
		return
	}

	if err := h.reservationService.ReleaseHold(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) Checkout(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cart entry id"})
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.reservationService.Checkout(c.Request.Context(), req.UserID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.reservationService.CancelBooking(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserCart(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	entries, err := h.reservationService.CartForUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CartEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToCartEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.reservationService.BookingsForUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrVariantNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCartEntryNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrBookingNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
