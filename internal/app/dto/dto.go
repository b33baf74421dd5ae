package dto

import "time"

// ============ Common ============

// ErrorResponse is the only error shape the API produces.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ============ Auth ============

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  UserPayload `json:"user"`
}

// ============ Services ============

type ServiceResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"` // Travel, Logistik, Charter
	Route       string    `json:"route"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceListResponse struct {
	Services    []ServiceResponse `json:"services"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int64             `json:"total"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=Travel Logistik Charter"`
	Route       string  `json:"route" binding:"required"`
	Price       *int64  `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"` // default true
}

type CreateServiceResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// ============ Reservations ============

type ReservationResponse struct {
	ID              uint      `json:"id"`
	ServiceID       uint      `json:"serviceId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	TravelDate      string    `json:"travelDate"` // YYYY-MM-DD
	Passengers      int       `json:"passengers"`
	PickupLocation  *string   `json:"pickupLocation"`
	DropoffLocation *string   `json:"dropoffLocation"`
	Notes           *string   `json:"notes"`
	PaymentMethod   string    `json:"paymentMethod"`
	TotalPrice      int64     `json:"totalPrice"`
	Status          string    `json:"status"` // pending, confirmed, completed, cancelled
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ServiceName     string    `json:"serviceName"`
	ServiceRoute    string    `json:"serviceRoute"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	CurrentPage  int                   `json:"currentPage"`
	TotalPages   int                   `json:"totalPages"`
	Total        int64                 `json:"total"`
}

type CreateReservationRequest struct {
	ServiceID       uint    `json:"serviceId" binding:"required"`
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail" binding:"required"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	TravelDate      string  `json:"travelDate" binding:"required"`
	Passengers      int     `json:"passengers" binding:"required,gt=0"`
	PickupLocation  *string `json:"pickupLocation"`
	DropoffLocation *string `json:"dropoffLocation"`
	Notes           *string `json:"notes"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
}

type CreateReservationResponse struct {
	ID         uint   `json:"id"`
	TotalPrice int64  `json:"totalPrice"`
	Message    string `json:"message"`
}

type UpdateReservationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// ============ Upload ============

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}
