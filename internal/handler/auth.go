package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	}

	user, tokens, err := h.userService.Signup(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, tokens))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	user, tokens, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(user, tokens))
}

func (h *Handler) RefreshToken(c *ginext.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	tokens, err := h.userService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Logout(c *ginext.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := h.userService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Logged out successfully"})
}

func (h *Handler) GetProfile(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.GetString(middleware.ContextUserID), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteAccount(c *ginext.Context) {
	if err := h.userService.DeleteAccount(c.Request.Context(), c.GetString(middleware.ContextUserID)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Account deleted successfully"})
}

func (h *Handler) RequestPasswordReset(c *ginext.Context) {
	var req dto.RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := h.userService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Password reset email sent successfully"})
}

func (h *Handler) ResetPassword(c *ginext.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Password has been reset successfully"})
}
