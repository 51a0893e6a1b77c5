package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"venuebook/config"
	"venuebook/models"
	"venuebook/services/booking"
	"venuebook/utils"
)

// BookingHandler exposes the booking session endpoints the calendar view
// talks to.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession creates a new booking session for an event.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		EventID string `json:"eventId" binding:"required"`
		UserID  string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, view, err := h.Service.StartSession(c.Request.Context(), input.EventID, input.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to start session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"selection": view,
		// Clients should debounce quote requests by this many milliseconds.
		"recalcDebounceMs": config.AppConfig.RecalcDebounceMS,
	})
}

// UpdateSelection applies one calendar click, or a bulk date replacement, to
// the session's selection.
func (h *BookingHandler) UpdateSelection(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Action string       `json:"action"`
		Date   *time.Time   `json:"date,omitempty"`
		Dates  *[]time.Time `json:"dates,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var (
		view *models.SelectionView
		err  error
	)
	switch {
	case input.Dates != nil:
		view, err = h.Service.SetDates(c.Request.Context(), sessionID, *input.Dates)
	case input.Action == booking.ActionClear:
		view, err = h.Service.ApplyDateAction(c.Request.Context(), sessionID, input.Action, time.Time{})
	case input.Date != nil:
		view, err = h.Service.ApplyDateAction(c.Request.Context(), sessionID, input.Action, *input.Date)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "either date, dates, or a clear action is required")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update selection", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "selection": view})
}

// Quote prices the current selection. The seq field carries the client's
// monotonically increasing request counter; stale results come back flagged
// and should be dropped.
func (h *BookingHandler) Quote(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Seq     uint64                `json:"seq" binding:"required"`
		Options models.PricingOptions `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Service.Quote(c.Request.Context(), sessionID, input.Seq, input.Options)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to calculate quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// SubmitBooking finalizes the session into a persisted booking.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	bookingRecord, err := h.Service.SubmitBooking(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to submit booking", err.Error())
		return
	}

	h.Logger.Info("booking submitted",
		zap.String("bookingID", bookingRecord.ID),
		zap.String("eventID", bookingRecord.EventID),
		zap.Int("dayCount", bookingRecord.DayCount))
	c.JSON(http.StatusOK, gin.H{"booking": bookingRecord})
}

// CancelSession abandons an in-progress session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
