package catalog

import (
	"net/http"
	"strconv"

	"primedrew/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public inventory endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventory", h.Inventory)
	rg.GET("/inventory/:code", h.VehicleByCode)
}

// RegisterHostRoutes wires the endpoints behind the host role.
func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles", h.CreateVehicle)
	rg.GET("/vehicles", h.MyVehicles)
	rg.PUT("/vehicles/:id", h.UpdateVehicle)
	rg.PATCH("/vehicles/:id/availability", h.SetAvailability)
	rg.GET("/insights/demand", h.DemandByType)
}

func (h *Handler) Inventory(c *gin.Context) {
	var f InventoryFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter")
		return
	}

	items, err := h.service.Inventory(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load inventory")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": items})
}

func (h *Handler) VehicleByCode(c *gin.Context) {
	details, err := h.service.VehicleByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vehicle")
		return
	}

	response.Success(c, http.StatusOK, details)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.CreateVehicle(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vehicle data")
		case ErrHostNotApproved:
			response.Error(c, http.StatusForbidden, "HOST_NOT_APPROVED", "Host account is not approved yet")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create vehicle")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) MyVehicles(c *gin.Context) {
	vehicles, err := h.service.MyVehicles(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load vehicles")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeVehicleError(c, err, "Failed to update vehicle")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetAvailability(c.Request.Context(), c.GetInt64("user_id"), id, *req.Available); err != nil {
		h.writeVehicleError(c, err, "Failed to change availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle_id": id, "available": *req.Available})
}

func (h *Handler) DemandByType(c *gin.Context) {
	rows, err := h.service.DemandByType(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load demand insights")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"demand": rows})
}

func (h *Handler) writeVehicleError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your vehicle")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vehicle data")
	case ErrHasFutureBookings:
		response.Error(c, http.StatusConflict, "HAS_FUTURE_BOOKINGS", "Vehicle has upcoming confirmed bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
