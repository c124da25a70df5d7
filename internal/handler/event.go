package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingLink: req.MeetingLink,
		Thumbnail:   req.Thumbnail,
		OrganizerID: c.GetString(middleware.ContextUserID),
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event, h.clock.Now()))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingLink: req.MeetingLink,
		Thumbnail:   req.Thumbnail,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, c.GetString(middleware.ContextUserID), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event, h.clock.Now()))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	event, err := h.eventService.Cancel(c.Request.Context(), id, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event, h.clock.Now()))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, c.GetString(middleware.ContextUserID)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Event deleted successfully"})
}

func (h *Handler) GetEventDetails(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	viewerID := c.GetString(middleware.ContextUserID)
	viewerRole := domain.Role(c.GetString(middleware.ContextUserRole))

	details, err := h.eventService.GetDetails(c.Request.Context(), id, viewerID, viewerRole)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details, h.clock.Now()))
}

func (h *Handler) ListOrganizerUpcoming(c *ginext.Context) {
	page, limit := pageParams(c)

	result, err := h.eventService.ListOrganizerUpcoming(c.Request.Context(), c.GetString(middleware.ContextUserID), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventPageResponse(result, h.clock.Now()))
}

func (h *Handler) ListOrganizerCompleted(c *ginext.Context) {
	page, limit := pageParams(c)

	result, err := h.eventService.ListOrganizerCompleted(c.Request.Context(), c.GetString(middleware.ContextUserID), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventPageResponse(result, h.clock.Now()))
}

func (h *Handler) ListOrganizerAll(c *ginext.Context) {
	events, err := h.eventService.ListOrganizerAll(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"events": dto.ToEventListResponse(events, h.clock.Now())})
}

func (h *Handler) ListParticipantUpcoming(c *ginext.Context) {
	page, limit := pageParams(c)

	result, err := h.eventService.ListUpcoming(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventPageResponse(result, h.clock.Now()))
}

func (h *Handler) ListParticipantCompleted(c *ginext.Context) {
	page, limit := pageParams(c)

	result, err := h.eventService.ListCompleted(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventPageResponse(result, h.clock.Now()))
}

func (h *Handler) ListMyEvents(c *ginext.Context) {
	my, err := h.eventService.ListParticipantMyEvents(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := h.clock.Now()
	c.JSON(http.StatusOK, dto.MyEventsResponse{
		Upcoming:  dto.ToEventListResponse(my.Upcoming, now),
		Live:      dto.ToEventListResponse(my.Live, now),
		Completed: dto.ToEventListResponse(my.Completed, now),
	})
}

func (h *Handler) SearchEvents(c *ginext.Context) {
	events, err := h.eventService.Search(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"events": dto.ToEventListResponse(events, h.clock.Now())})
}
