package complaint

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

// RegisterRoutes wires the public contact endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Create)
}

// RegisterAdminRoutes wires the triage endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/complaints", h.List)
	rg.PATCH("/complaints/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message must not be empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit complaint")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"complaint": created})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if err == ErrInvalidStatus {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown complaint status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load complaints")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaints": rows})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid complaint ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch err {
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown complaint status")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update complaint")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaint_id": id, "status": req.Status})
}
