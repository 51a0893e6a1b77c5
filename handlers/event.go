package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuebook/models"
	"venuebook/services/event"
	"venuebook/services/pricing"
	"venuebook/utils"
)

// EventHandler exposes admin event and tier management endpoints.
type EventHandler struct {
	Service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

// CreateEventHandler creates a reservation-type event with its pricing tiers.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var input models.VenueEvent
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Service.CreateEvent(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create event", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *EventHandler) GetEventHandler(c *gin.Context) {
	ev, err := h.Service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "event not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete event", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTierHandler appends a pricing tier to an event.
func (h *EventHandler) AddTierHandler(c *gin.Context) {
	var tier models.PricingTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ev, err := h.Service.AddTier(c.Request.Context(), c.Param("id"), tier)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to add tier", err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

// UpdateTierHandler replaces the tier with the same day count.
func (h *EventHandler) UpdateTierHandler(c *gin.Context) {
	var tier models.PricingTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ev, err := h.Service.UpdateTier(c.Request.Context(), c.Param("id"), tier)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to update tier", err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

// RemoveTierHandler deletes the tier with the given day count.
func (h *EventHandler) RemoveTierHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day count", err.Error())
		return
	}

	ev, err := h.Service.RemoveTier(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to remove tier", err.Error())
		return
	}
	c.JSON(http.StatusOK, ev)
}

// ValidateTiersHandler dry-runs the tier validator for the admin form. The
// body is untrusted: it goes through the parse boundary before validation.
func (h *EventHandler) ValidateTiersHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tiers, issues := pricing.ParseTiers(body["tiers"])
	if len(issues) > 0 {
		c.JSON(http.StatusOK, models.TierValidation{IsValid: false, Issues: issues, Warnings: []string{}})
		return
	}
	c.JSON(http.StatusOK, h.Service.ValidateTiers(tiers))
}
