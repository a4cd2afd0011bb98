package dto

type VariantRequest struct {
	StartsAt string `json:"starts_at" binding:"required"`
	EndsAt   string `json:"ends_at" binding:"required"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

type CreateTripRequest struct {
	Title                string           `json:"title" binding:"required"`
	Destination          string           `json:"destination" binding:"required"`
	Country              string           `json:"country"`
	Description          string           `json:"description"`
	BaseRooms            int              `json:"base_rooms" binding:"min=0"`
	CancellationDeadline string           `json:"cancellation_deadline" binding:"required"`
	Variants             []VariantRequest `json:"variants"`
}

type ReserveRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	DateSelector int    `json:"date_selector"`
	Quantity     int    `json:"quantity" binding:"required,gt=0"`
}

type JoinWaitlistRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CheckoutRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
}
