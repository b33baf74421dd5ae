package handler

import (
	"errors"
	"net/http"
	"time"

	"novitatravel/internal/app/ds"
	"novitatravel/internal/app/dto"
	"novitatravel/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const travelDateLayout = "2006-01-02"

func toReservationResponse(r repository.ReservationRow) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              r.ID,
		ServiceID:       r.ServiceID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TravelDate:      r.TravelDate.Format(travelDateLayout),
		Passengers:      r.Passengers,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		Notes:           r.Notes,
		PaymentMethod:   r.PaymentMethod,
		TotalPrice:      r.TotalPrice,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		ServiceName:     r.ServiceName,
		ServiceRoute:    r.ServiceRoute,
	}
}

// GetReservations lists bookings for the admin panel
// @Summary List reservations
// @Description Returns one page of reservations joined with service name/route, newest first
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Substring match on customer name, email and phone"
// @Param status query string false "Exact status (pending, confirmed, completed, cancelled)"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reservations [get]
func (h *APIHandler) GetReservations(ctx *gin.Context) {
	page, limit := parsePagination(ctx)
	search := ctx.Query("search")
	status := ctx.Query("status")

	rows, total, err := h.Repository.ListReservations(page, limit, search, status)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	dtoReservations := make([]dto.ReservationResponse, len(rows))
	for i, r := range rows {
		dtoReservations[i] = toReservationResponse(r)
	}

	ctx.JSON(http.StatusOK, dto.ReservationListResponse{
		Reservations: dtoReservations,
		CurrentPage:  page,
		TotalPages:   totalPages(total, limit),
		Total:        total,
	})
}

// CreateReservation records a public booking
// @Summary Create reservation
// @Description Public endpoint; the total price is the current service price times the passenger count, frozen at this moment
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation fields"
// @Success 201 {object} dto.CreateReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reservations [post]
func (h *APIHandler) CreateReservation(ctx *gin.Context) {
	var request dto.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Required fields are missing")
		return
	}

	travelDate, err := time.Parse(travelDateLayout, request.TravelDate)
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Invalid travel date")
		return
	}

	service, err := h.Repository.GetServiceByID(request.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	// Snapshot of the price at booking time. Later price edits on the
	// service do not change this reservation.
	totalPrice := service.Price * int64(request.Passengers)

	reservation := ds.Reservation{
		ServiceID:       request.ServiceID,
		CustomerName:    request.CustomerName,
		CustomerEmail:   request.CustomerEmail,
		CustomerPhone:   request.CustomerPhone,
		TravelDate:      travelDate,
		Passengers:      request.Passengers,
		PickupLocation:  request.PickupLocation,
		DropoffLocation: request.DropoffLocation,
		Notes:           request.Notes,
		PaymentMethod:   request.PaymentMethod,
		TotalPrice:      totalPrice,
		Status:          ds.StatusPending,
	}

	if err := h.Repository.CreateReservation(&reservation); err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateReservationResponse{
		ID:         reservation.ID,
		TotalPrice: totalPrice,
		Message:    "Reservation created successfully",
	})
}

// UpdateReservation sets the reservation status
// @Summary Update reservation status
// @Description Any of the four statuses may be set; there is no transition guard
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reservations/{id} [put]
func (h *APIHandler) UpdateReservation(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Reservation not found")
		return
	}

	var request dto.UpdateReservationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.Repository.UpdateReservationStatus(id, request.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Reservation not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Reservation updated successfully"})
}

// DeleteReservation removes a booking
// @Summary Delete reservation
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reservations/{id} [delete]
func (h *APIHandler) DeleteReservation(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Reservation not found")
		return
	}

	if err := h.Repository.DeleteReservation(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Reservation not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Reservation deleted successfully"})
}
