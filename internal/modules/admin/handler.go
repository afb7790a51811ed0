package admin

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hosts/:id/approve", h.ApproveHost)
	rg.PATCH("/hosts/:id/active", h.SetHostActive)
	rg.GET("/refunds", h.PendingRefunds)
	rg.POST("/refunds/:id/resolve", h.ResolveRefund)
	rg.GET("/deposit-refunds", h.PendingDepositRefunds)
	rg.POST("/deposit-refunds/:id/resolve", h.ResolveDepositRefund)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) ApproveHost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid host ID")
		return
	}

	host, err := h.service.ApproveHost(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to approve host")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"host": host})
}

func (h *Handler) SetHostActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid host ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	host, err := h.service.SetHostActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.writeError(c, err, "Failed to update host")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"host": host})
}

func (h *Handler) PendingRefunds(c *gin.Context) {
	rows, err := h.service.PendingRefunds(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load refunds")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"refunds": rows})
}

func (h *Handler) PendingDepositRefunds(c *gin.Context) {
	rows, err := h.service.PendingDepositRefunds(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load deposit refunds")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deposit_refunds": rows})
}

type resolveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

func (h *Handler) ResolveRefund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResolveRefund(c.Request.Context(), id, *req.Approve); err != nil {
		h.writeError(c, err, "Failed to resolve refund")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": id})
}

func (h *Handler) ResolveDepositRefund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResolveDepositRefund(c.Request.Context(), id, *req.Approve); err != nil {
		h.writeError(c, err, "Failed to resolve deposit refund")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": id})
}

func (h *Handler) Stats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case ErrNotHost:
		response.Error(c, http.StatusBadRequest, "NOT_A_HOST", "User is not a host")
	case ErrInvalidState:
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Operation not valid in the current state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
