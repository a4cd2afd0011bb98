package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/idanidan29/tripbooker/internal/handler/dto"
	hmocks "github.com/idanidan29/tripbooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockTripSvc, *hmocks.MockReservationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	tripSvc := hmocks.NewMockTripSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(tripSvc, reservationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips", h.ListTrips)
		api.GET("/trips/:id", h.GetTrip)
		api.POST("/trips/:id/reserve", h.Reserve)
		api.POST("/trips/:id/waitlist", h.JoinWaitlist)
		api.DELETE("/cart/:id", h.ReleaseHold)
		api.POST("/cart/:id/checkout", h.Checkout)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/cart", h.GetUserCart)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return tripSvc, reservationSvc, userSvc, r
}

// --- Trips ---

func TestHandler_CreateTrip_Success(t *testing.T) {
	tripSvc, _, _, r := setupRouter(t)

	deadline := time.Now().Add(30 * 24 * time.Hour)
	trip := &domain.Trip{
		ID:                   uuid.New().String(),
		Title:                "Azores Hiking Week",
		Destination:          "Ponta Delgada",
		Country:              "Portugal",
		BaseCapacity:         10,
		BaseAvailableRooms:   10,
		CancellationDeadline: deadline,
		CreatedAt:            time.Now(),
	}

	tripSvc.EXPECT().CreateTrip(mock.Anything, mock.Anything).Return(trip, nil)

	body, _ := json.Marshal(dto.CreateTripRequest{
		Title:                "Azores Hiking Week",
		Destination:          "Ponta Delgada",
		Country:              "Portugal",
		BaseRooms:            10,
		CancellationDeadline: deadline.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TripResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Azores Hiking Week", resp.Title)
	assert.Equal(t, 10, resp.BaseAvailableRooms)
}

func TestHandler_CreateTrip_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTrip_InvalidDeadline(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","destination":"Y","base_rooms":5,"cancellation_deadline":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTrip_Success(t *testing.T) {
	tripSvc, _, _, r := setupRouter(t)

	tripID := uuid.New().String()
	details := &domain.TripDetails{
		Trip: domain.Trip{ID: tripID, Title: "Azores Hiking Week", BaseAvailableRooms: 4},
		Variants: []domain.DateVariant{
			{TripID: tripID, VariantIndex: 0, AvailableRooms: 2},
		},
	}

	tripSvc.EXPECT().GetDetails(mock.Anything, tripID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TripDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Trip.BaseAvailableRooms)
	require.Len(t, resp.Variants, 1)
	assert.Equal(t, 2, resp.Variants[0].AvailableRooms)
}

func TestHandler_GetTrip_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTrip_NotFound(t *testing.T) {
	tripSvc, _, _, r := setupRouter(t)

	tripID := uuid.New().String()
	tripSvc.EXPECT().GetDetails(mock.Anything, tripID).Return(nil, domain.ErrTripNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListTrips_Success(t *testing.T) {
	tripSvc, _, _, r := setupRouter(t)

	trips := []*domain.Trip{
		{ID: "t1", Title: "Trip 1", CreatedAt: time.Now()},
		{ID: "t2", Title: "Trip 2", CreatedAt: time.Now()},
	}
	tripSvc.EXPECT().List(mock.Anything).Return(trips, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TripResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Reservations ---

func TestHandler_Reserve_Held(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	tripID := uuid.New().String()
	userID := uuid.New().String()
	result := &domain.ReservationResult{
		Outcome: domain.OutcomeHeld,
		Entry: &domain.CartEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			TripID:    tripID,
			Quantity:  2,
			ExpiresAt: time.Now().Add(24 * time.Hour),
			CreatedAt: time.Now(),
		},
	}

	reservationSvc.EXPECT().RequestReservation(mock.Anything, userID, tripID, -1, 2).Return(result, nil)

	body, _ := json.Marshal(dto.ReserveRequest{UserID: userID, DateSelector: -1, Quantity: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID+"/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "held", resp.Outcome)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, 2, resp.Entry.Quantity)
}

func TestHandler_Reserve_SoldOut(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	tripID := uuid.New().String()
	userID := uuid.New().String()
	result := &domain.ReservationResult{Outcome: domain.OutcomePromptWaitlist, QueueLength: 3}

	reservationSvc.EXPECT().RequestReservation(mock.Anything, userID, tripID, -1, 1).Return(result, nil)

	body, _ := json.Marshal(dto.ReserveRequest{UserID: userID, DateSelector: -1, Quantity: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID+"/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "prompt_waitlist", resp.Outcome)
	assert.Equal(t, 3, resp.QueueLength)
	assert.Nil(t, resp.Entry)
}

func TestHandler_Reserve_Insufficient(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	tripID := uuid.New().String()
	userID := uuid.New().String()

	reservationSvc.EXPECT().RequestReservation(mock.Anything, userID, tripID, -1, 5).
		Return(nil, domain.ErrInsufficientInventory)

	body, _ := json.Marshal(dto.ReserveRequest{UserID: userID, DateSelector: -1, Quantity: 5})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID+"/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Reserve_InvalidTripID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","quantity":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/bad-id/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinWaitlist_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	tripID := uuid.New().String()
	userID := uuid.New().String()
	entry := &domain.WaitlistEntry{ID: uuid.New().String(), UserID: userID, TripID: tripID, Status: domain.WaitlistStatusWaiting}

	reservationSvc.EXPECT().JoinWaitlist(mock.Anything, userID, tripID).Return(entry, 4, nil)

	body, _ := json.Marshal(dto.JoinWaitlistRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID+"/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waiting", resp.Status)
	assert.Equal(t, 4, resp.QueueLength)
}

func TestHandler_JoinWaitlist_AlreadyOn(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	tripID := uuid.New().String()
	userID := uuid.New().String()

	reservationSvc.EXPECT().JoinWaitlist(mock.Anything, userID, tripID).
		Return(nil, 2, domain.ErrAlreadyOnWaitlist)

	body, _ := json.Marshal(dto.JoinWaitlistRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID+"/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WaitlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_on_waitlist", resp.Status)
	assert.Equal(t, 2, resp.QueueLength)
}

func TestHandler_ReleaseHold_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	entryID := uuid.New().String()
	reservationSvc.EXPECT().ReleaseHold(mock.Anything, entryID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+entryID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ReleaseHold_NotFound(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	entryID := uuid.New().String()
	reservationSvc.EXPECT().ReleaseHold(mock.Anything, entryID).Return(domain.ErrCartEntryNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+entryID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Checkout_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	entryID := uuid.New().String()
	userID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		TripID:    uuid.New().String(),
		Quantity:  2,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().Checkout(mock.Anything, userID, entryID).Return(booking, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/"+entryID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_CancelBooking_DeadlinePassed(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().CancelBooking(mock.Anything, bookingID).Return(domain.ErrDeadlinePassed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	reservationSvc.EXPECT().CancelBooking(mock.Anything, bookingID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "ana@example.com",
		FirstName: "Ana",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Email: "ana@example.com", FirstName: "Ana"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ana@example.com", resp.Email)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Email: "taken@example.com", FirstName: "Ana"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserCart_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	entries := []*domain.CartEntry{
		{ID: "c1", UserID: userID, TripID: "t1", Quantity: 1, ExpiresAt: time.Now().Add(time.Hour), CreatedAt: time.Now()},
	}

	reservationSvc.EXPECT().CartForUser(mock.Anything, userID).Return(entries, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CartEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	tripSvc, _, _, r := setupRouter(t)

	tripID := uuid.New().String()
	tripSvc.EXPECT().GetDetails(mock.Anything, tripID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
