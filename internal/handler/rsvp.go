package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

func (h *Handler) RegisterRSVP(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	rsvp, err := h.rsvpService.Register(c.Request.Context(), eventID, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRSVPResponse(rsvp))
}

func (h *Handler) CancelRSVP(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	if err := h.rsvpService.Cancel(c.Request.Context(), eventID, c.GetString(middleware.ContextUserID)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "RSVP canceled successfully"})
}

func (h *Handler) RSVPCount(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	count, err := h.rsvpService.Count(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"event_id": eventID, "count": count})
}

func (h *Handler) ListAttendees(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	viewerID := c.GetString(middleware.ContextUserID)
	viewerRole := domain.Role(c.GetString(middleware.ContextUserRole))

	attendees, err := h.rsvpService.Attendees(c.Request.Context(), eventID, viewerID, viewerRole)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToAttendeeResponse(a))
	}

	c.JSON(http.StatusOK, ginext.H{"attendees": resp})
}
