package handler

import (
	"math"
	"net/http"
	"strconv"

	"novitatravel/internal/app/config"
	"novitatravel/internal/app/dto"
	"novitatravel/internal/app/middleware"
	"novitatravel/internal/app/repository"
	"novitatravel/internal/app/role"
	"novitatravel/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler carries the REST handlers and their dependencies.
type APIHandler struct {
	Repository *repository.Repository
	Storage    *storage.DiskStorage
	Config     *config.Config
}

func NewAPIHandler(r *repository.Repository, s *storage.DiskStorage, cfg *config.Config) *APIHandler {
	return &APIHandler{
		Repository: r,
		Storage:    s,
		Config:     cfg,
	}
}

// RegisterStatic serves the public site templates and the uploaded images
// (read-only).
func (h *APIHandler) RegisterStatic(router *gin.Engine) {
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./resources")
	router.Static("/uploads", h.Config.Upload.Dir)
}

// RegisterRoutes registers the REST API. Catalog reads, reservation
// submission and settings reads are public; everything else requires an
// admin token.
func (h *APIHandler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/verify", authMiddleware.WithAuthCheck(role.Admin), h.Verify)
	}

	services := api.Group("/services")
	{
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)

		services.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateService)
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)
	}

	reservations := api.Group("/reservations")
	{
		reservations.POST("", h.CreateReservation) // public submission
		reservations.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetReservations)
		reservations.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateReservation)
		reservations.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteReservation)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", authMiddleware.WithAuthCheck(role.Admin), h.UpdateSettings)
	}

	api.POST("/upload", authMiddleware.WithAuthCheck(role.Admin), h.UploadImage)

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Route not found"})
	})
}

// errorResponse writes the single error shape the API uses.
func (h *APIHandler) errorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// internalError logs the cause server-side and answers 500 without
// leaking detail.
func (h *APIHandler) internalError(ctx *gin.Context, err error) {
	logrus.Error(err)
	h.errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
}

// parseID reads the :id path parameter.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads page/limit query parameters with defaults 1/10.
// Other values pass through as supplied.
func parsePagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page == 0 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit == 0 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
