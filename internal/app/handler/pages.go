package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"novitatravel/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterPages registers the server-rendered public site.
func (h *APIHandler) RegisterPages(router *gin.Engine) {
	router.GET("/", h.IndexPage)
	router.GET("/services/:id", h.ServicePage)
	router.POST("/services/:id/reserve", h.SubmitReservationForm)
}

// settingsMap loads the company settings for page rendering, with
// structured values decoded.
func (h *APIHandler) settingsMap() map[string]interface{} {
	settings, err := h.Repository.GetAllSettings()
	if err != nil {
		logrus.Error("Error loading settings: ", err)
		return map[string]interface{}{}
	}
	result := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		result[setting.Key] = decodeSettingValue(setting.Value)
	}
	return result
}

// IndexPage renders the landing page with the service catalog.
func (h *APIHandler) IndexPage(ctx *gin.Context) {
	search := ctx.Query("search")
	serviceType := ctx.Query("type")

	services, _, err := h.Repository.ListServices(1, 50, search, serviceType)
	if err != nil {
		logrus.Error("Error loading services: ", err)
		services = nil
	}

	active := make([]ds.Service, 0, len(services))
	for _, s := range services {
		if s.IsActive {
			active = append(active, s)
		}
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"services": active,
		"settings": h.settingsMap(),
		"search":   search,
		"type":     serviceType,
	})
}

// ServicePage renders one service with its reservation form.
func (h *APIHandler) ServicePage(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.HTML(http.StatusNotFound, "service.html", gin.H{"error": "Layanan tidak ditemukan"})
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		ctx.HTML(http.StatusNotFound, "service.html", gin.H{"error": "Layanan tidak ditemukan"})
		return
	}

	ctx.HTML(http.StatusOK, "service.html", gin.H{
		"service":  service,
		"settings": h.settingsMap(),
		"booked":   ctx.Query("booked") == "1",
	})
}

// SubmitReservationForm handles the booking form on the service page.
func (h *APIHandler) SubmitReservationForm(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.HTML(http.StatusNotFound, "service.html", gin.H{"error": "Layanan tidak ditemukan"})
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		ctx.HTML(http.StatusNotFound, "service.html", gin.H{"error": "Layanan tidak ditemukan"})
		return
	}

	render := func(formError string) {
		ctx.HTML(http.StatusBadRequest, "service.html", gin.H{
			"service":   service,
			"settings":  h.settingsMap(),
			"formError": formError,
		})
	}

	name := ctx.PostForm("customerName")
	email := ctx.PostForm("customerEmail")
	phone := ctx.PostForm("customerPhone")
	paymentMethod := ctx.PostForm("paymentMethod")
	if name == "" || email == "" || phone == "" || paymentMethod == "" {
		render("Mohon lengkapi semua kolom yang wajib diisi")
		return
	}

	travelDate, err := time.Parse(travelDateLayout, ctx.PostForm("travelDate"))
	if err != nil {
		render("Tanggal keberangkatan tidak valid")
		return
	}

	passengers := 1
	if p := ctx.PostForm("passengers"); p != "" {
		if val, err := strconv.Atoi(p); err == nil && val > 0 {
			passengers = val
		}
	}

	reservation := ds.Reservation{
		ServiceID:     service.ID,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		TravelDate:    travelDate,
		Passengers:    passengers,
		PaymentMethod: paymentMethod,
		TotalPrice:    service.Price * int64(passengers),
		Status:        ds.StatusPending,
	}
	if pickup := ctx.PostForm("pickupLocation"); pickup != "" {
		reservation.PickupLocation = &pickup
	}
	if dropoff := ctx.PostForm("dropoffLocation"); dropoff != "" {
		reservation.DropoffLocation = &dropoff
	}
	if notes := ctx.PostForm("notes"); notes != "" {
		reservation.Notes = &notes
	}

	if err := h.Repository.CreateReservation(&reservation); err != nil {
		logrus.Error("Error creating reservation: ", err)
		render("Terjadi kesalahan, silakan coba lagi")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/services/%d?booked=1", service.ID))
}
