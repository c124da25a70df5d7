package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRSVPNotFound     = errors.New("no active RSVP found for this event")
	ErrFeedbackNotFound = errors.New("feedback not found")
)

var (
	ErrAlreadyRegistered    = errors.New("you have already RSVP'd for this event")
	ErrEventStarted         = errors.New("RSVP is not allowed after the event has started or completed")
	ErrEventLiveOrCompleted = errors.New("RSVP cannot be canceled once the event is live or completed")
	ErrEventCanceled        = errors.New("event has been canceled")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrTokenExpired       = errors.New("authentication token has expired")
	ErrResetTokenInvalid  = errors.New("password reset token is invalid or has expired")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("access denied")
)

// ScheduleConflictError names the organizer's event the new schedule
// overlaps with, so the API can surface which booking is in the way.
type ScheduleConflictError struct {
	Title     string
	Date      string
	StartTime string
	EndTime   string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf(
		"you already have another event (%s) scheduled on %s from %s to %s",
		e.Title, e.Date, e.StartTime, e.EndTime,
	)
}

// IsScheduleConflict reports whether err is a ScheduleConflictError.
func IsScheduleConflict(err error) bool {
	var sc *ScheduleConflictError
	return errors.As(err, &sc)
}
