package handler

import (
	"errors"
	"net/http"

	"novitatravel/internal/app/ds"
	"novitatravel/internal/app/dto"
	"novitatravel/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func toServiceResponse(s ds.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        s.Type,
		Route:       s.Route,
		Price:       s.Price,
		Description: s.Description,
		Image:       s.Image,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// GetServices lists the catalog
// @Summary List services
// @Description Returns one page of services, newest first, with optional search and type filter
// @Tags Services
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Substring match on name, route and description"
// @Param type query string false "Exact service type (Travel, Logistik, Charter)"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(ctx *gin.Context) {
	page, limit := parsePagination(ctx)
	search := ctx.Query("search")
	serviceType := ctx.Query("type")

	services, total, err := h.Repository.ListServices(page, limit, search, serviceType)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = toServiceResponse(s)
	}

	ctx.JSON(http.StatusOK, dto.ServiceListResponse{
		Services:    dtoServices,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		Total:       total,
	})
}

// GetService returns one service
// @Summary Get service by ID
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Service not found")
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toServiceResponse(*service))
}

// CreateService adds a catalog entry
// @Summary Create service
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service fields"
// @Success 201 {object} dto.CreateServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(ctx *gin.Context) {
	var request dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Required fields are missing")
		return
	}

	service := ds.Service{
		Name:        request.Name,
		Type:        request.Type,
		Route:       request.Route,
		Price:       *request.Price,
		Description: request.Description,
		Image:       request.Image,
		IsActive:    request.IsActive == nil || *request.IsActive,
	}

	if err := h.Repository.CreateService(&service); err != nil {
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateServiceResponse{
		ID:      service.ID,
		Message: "Service created successfully",
	})
}

// UpdateService replaces the mutable fields of a service
// @Summary Update service
// @Description Full replace of the mutable fields; a replaced image file is deleted from storage best-effort
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.CreateServiceRequest true "Service fields"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Service not found")
		return
	}

	var request dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "Required fields are missing")
		return
	}

	current, err := h.Repository.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(ctx, err)
		return
	}
	oldImage := current.Image

	service := ds.Service{
		ID:          id,
		Name:        request.Name,
		Type:        request.Type,
		Route:       request.Route,
		Price:       *request.Price,
		Description: request.Description,
		Image:       request.Image,
		IsActive:    request.IsActive == nil || *request.IsActive,
	}

	if err := h.Repository.UpdateService(&service); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	// Best-effort cleanup of the replaced image file.
	if oldImage != nil && (request.Image == nil || *request.Image != *oldImage) {
		if err := h.Storage.DeleteFile(*oldImage); err != nil {
			logrus.Errorf("Error deleting image file: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Service updated successfully"})
}

// DeleteService removes a service
// @Summary Delete service
// @Description Fails when the service still has reservations; otherwise removes the row and its image file
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		h.errorResponse(ctx, http.StatusNotFound, "Service not found")
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
			return
		}
		h.internalError(ctx, err)
		return
	}

	if err := h.Repository.DeleteService(id); err != nil {
		switch {
		case errors.Is(err, repository.ErrServiceHasReservations):
			h.errorResponse(ctx, http.StatusBadRequest, "Cannot delete service with existing reservations")
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.errorResponse(ctx, http.StatusNotFound, "Service not found")
		default:
			h.internalError(ctx, err)
		}
		return
	}

	if service.Image != nil {
		if err := h.Storage.DeleteFile(*service.Image); err != nil {
			logrus.Errorf("Error deleting image file: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Service deleted successfully"})
}
