package api

import (
	"errors"
	"net/http"

	reqdto "eventtix/internal/handler/dto/request"
	resdto "eventtix/internal/handler/dto/response"
	"eventtix/internal/handler/middleware"
	"eventtix/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create payment intent
// @Description Start checkout for a priced reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /events/{id}/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	intent, err := h.bookingCommands.CreatePaymentIntent(c.Request.Context(), req.ReservationID, userID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentIntent(intent))
}

// @Summary Finalize reservation
// @Description Convert a hold into a confirmed booking, verifying payment when due
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.FinalizeRequest true "Finalize request"
// @Success 200 {object} resdto.BookingResponse "Idempotent replay of an already-finalized hold"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /events/{id}/finalize [post]
func (h *BookingHandler) Finalize(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.FinalizeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Finalize(c.Request.Context(), commands.FinalizeInput{
		ReservationID: req.ReservationID,
		PaymentRef:    req.PaymentIntentID,
	}, userID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrNotOwned):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reservation belongs to another user",
		})
	case errors.Is(err, commands.ErrReservationExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Reservation hold has expired",
		})
	case errors.Is(err, commands.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment confirmation required",
		})
	case errors.Is(err, commands.ErrPaymentNotVerified):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment could not be verified",
		})
	case errors.Is(err, commands.ErrNoPaymentDue):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Reservation has no amount due",
		})
	case errors.Is(err, commands.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, gin.H{
			"error": "User already has a booking for this event",
		})
	case errors.Is(err, commands.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is not in a valid state for this operation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
