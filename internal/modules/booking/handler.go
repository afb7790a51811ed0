package booking

import (
	"errors"
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
	rg.POST("/bookings/order", h.CreateOrder)
	rg.POST("/bookings/confirm", h.Confirm)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/complete", h.Complete)
	rg.GET("/bookings", h.MyBookings)
	rg.GET("/bookings/:id/receipt", h.Receipt)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateOrder(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental time range")
		case ErrVehicleNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
		case ErrNotAvailable:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Vehicle is not available for the selected time")
		default:
			response.Error(c, http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR", "Failed to create payment order")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Confirm(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionExpired):
			response.Error(c, http.StatusBadRequest, "SESSION_EXPIRED", "Reservation session expired, start again")
		case errors.Is(err, ErrPaymentVerification), errors.Is(err, ErrPaymentNotCaptured), errors.Is(err, ErrAmountMismatch):
			reconciliationError(c, err, http.StatusBadRequest, "PAYMENT_VERIFICATION_FAILED", "Payment could not be verified")
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrOverbooking):
			reconciliationError(c, err, http.StatusConflict, "BOOKING_CONFLICT", "Vehicle was taken while you were paying, support will contact you")
		case errors.Is(err, ErrPriceMismatch):
			reconciliationError(c, err, http.StatusConflict, "PRICE_CHANGED", "Price changed since the quote, support will contact you")
		case errors.Is(err, ErrVehicleNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to confirm booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// reconciliationError quotes the gateway payment id back to the user, who
// needs it when money moved without producing a booking.
func reconciliationError(c *gin.Context, err error, status int, code, message string) {
	var rec *ReconciliationError
	if errors.As(err, &rec) && rec.PaymentID != "" {
		response.ErrorWithDetails(c, status, code, message, gin.H{"payment_id": rec.PaymentID})
		return
	}
	response.Error(c, status, code, message)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Complete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rental period has not ended yet")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot be completed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking_id": id, "status": "Completed"})
}

func (h *Handler) Receipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	r, err := h.service.Receipt(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load receipt")
		}
		return
	}

	response.Success(c, http.StatusOK, r)
}

func (h *Handler) MyBookings(c *gin.Context) {
	rows, err := h.service.MyBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}
