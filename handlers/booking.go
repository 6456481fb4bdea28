package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuebook/gateway"
	"venuebook/models"
	"venuebook/services/booking"
	"venuebook/utils"
)

// BookingHandler exposes the booking core to the route layer.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetGames lists bookable games, optionally filtered by name.
func (h *BookingHandler) GetGames(c *gin.Context) {
	params := map[string]string{}
	if name := c.Query("name"); name != "" {
		params["name"] = name
	}

	games, err := h.Svc.GetGames(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetAvailability returns the reconciled slot list for one game and date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Query("gameId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "gameId must be an integer")
		return
	}
	date := c.Query("date")

	result, err := h.Svc.GetAvailability(c.Request.Context(), gameID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmBooking books a slot for the submitted customer details.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var attempt models.BookingAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	outcome, err := h.Svc.ConfirmBooking(c.Request.Context(), attempt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, outcome)
}

// respondServiceError maps core error classes onto HTTP responses. Raw
// provider error bodies stay in the logs; users get a generic message.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Message)
		return
	}

	var configErr *gateway.ConfigurationError
	if errors.As(err, &configErr) {
		utils.JSONError(c, http.StatusInternalServerError, "server configuration error",
			"The booking service is not configured correctly.")
		return
	}

	var timeoutErr *gateway.TimeoutError
	var upstreamErr *gateway.UpstreamError
	if errors.As(err, &timeoutErr) || errors.As(err, &upstreamErr) {
		utils.JSONError(c, http.StatusBadGateway, "booking failed",
			"We couldn't complete your booking right now. Please try again or contact us.")
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "unexpected error",
		"Something went wrong. Please try again later.")
}
