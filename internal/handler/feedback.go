package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

func (h *Handler) SubmitFeedback(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), eventID, c.GetString(middleware.ContextUserID), req.Rating, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(feedback))
}

func (h *Handler) ListFeedback(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	feedback, err := h.feedbackService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		resp = append(resp, dto.ToFeedbackResponse(f))
	}

	c.JSON(http.StatusOK, ginext.H{"feedback": resp})
}
