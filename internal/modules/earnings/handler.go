package earnings

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

// RegisterHostRoutes wires the host-facing earnings endpoint.
func (h *Handler) RegisterHostRoutes(rg *gin.RouterGroup) {
	rg.GET("/earnings", h.MyEarnings)
}

// RegisterAdminRoutes wires tier management and the platform summary.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/hosts/:id/tier", h.SetTier)
	rg.GET("/earnings/summary", h.Summary)
}

func (h *Handler) MyEarnings(c *gin.Context) {
	report, err := h.service.HostReport(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound, ErrNotHost:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Earnings are available to hosts only")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load earnings")
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}

func (h *Handler) SetTier(c *gin.Context) {
	hostID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid host ID")
		return
	}

	var req SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	host, err := h.service.SetTier(c.Request.Context(), hostID, req.Tier)
	if err != nil {
		switch err {
		case ErrInvalidTier:
			response.Error(c, http.StatusBadRequest, "INVALID_TIER", "Tier must be 70 or 80")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host not found")
		case ErrNotHost:
			response.Error(c, http.StatusBadRequest, "NOT_A_HOST", "User is not a host")
		case ErrNotEligible:
			response.Error(c, http.StatusConflict, "NOT_ELIGIBLE", "Host does not qualify for the premium tier")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update tier")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"host": host})
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load summary")
		return
	}

	response.Success(c, http.StatusOK, summary)
}
