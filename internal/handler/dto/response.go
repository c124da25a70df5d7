package dto

import (
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	MeetingLink    string `json:"meeting_link,omitempty"`
	Thumbnail      string `json:"thumbnail"`
	OrganizerID    string `json:"organizer_id"`
	Status         string `json:"status"`
	ComputedStatus string `json:"computed_status"`
	CreatedAt      string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event             EventResponse      `json:"event"`
	RegistrationCount int                `json:"registration_count"`
	Attendees         []AttendeeResponse `json:"attendees,omitempty"`
	ViewerRegistered  bool               `json:"viewer_registered"`
}

type AttendeeResponse struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	JoinedAt      string `json:"joined_at"`
}

type RSVPResponse struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Status        string `json:"status"`
	JoinedAt      string `json:"joined_at"`
}

type FeedbackResponse struct {
	ID              string `json:"id"`
	EventID         string `json:"event_id"`
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name,omitempty"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	CreatedAt       string `json:"created_at"`
}

type Metadata struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type EventPageResponse struct {
	Events   []EventResponse `json:"events"`
	Metadata Metadata        `json:"metadata"`
}

type MyEventsResponse struct {
	Upcoming  []EventResponse `json:"upcoming"`
	Live      []EventResponse `json:"live"`
	Completed []EventResponse `json:"completed"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(u *domain.User, tokens domain.TokenPair) AuthResponse {
	return AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}

// ToEventResponse renders an event with its status recomputed at now, so
// clients never see a stale cached status between scheduler sweeps.
func ToEventResponse(e *domain.Event, now time.Time) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		MeetingLink:    e.MeetingLink,
		Thumbnail:      e.Thumbnail,
		OrganizerID:    e.OrganizerID,
		Status:         string(e.Status),
		ComputedStatus: string(domain.ResolveStatus(e, now)),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails, now time.Time) EventDetailsResponse {
	resp := EventDetailsResponse{
		Event:             ToEventResponse(&d.Event, now),
		RegistrationCount: d.RegistrationCount,
		ViewerRegistered:  d.ViewerRegistered,
	}
	resp.Event.ComputedStatus = string(d.ComputedStatus)

	for _, a := range d.Attendees {
		resp.Attendees = append(resp.Attendees, ToAttendeeResponse(a))
	}

	return resp
}

func ToAttendeeResponse(a domain.Attendee) AttendeeResponse {
	return AttendeeResponse{
		ParticipantID: a.ParticipantID,
		Name:          a.Name,
		Email:         a.Email,
		JoinedAt:      a.JoinedAt.Format(time.RFC3339),
	}
}

func ToRSVPResponse(r *domain.RSVP) RSVPResponse {
	return RSVPResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		Status:        string(r.Status),
		JoinedAt:      r.JoinedAt.Format(time.RFC3339),
	}
}

func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:              f.ID,
		EventID:         f.EventID,
		ParticipantID:   f.ParticipantID,
		ParticipantName: f.ParticipantName,
		Rating:          f.Rating,
		Comment:         f.Comment,
		CreatedAt:       f.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventPageResponse(p *domain.EventPage, now time.Time) EventPageResponse {
	events := make([]EventResponse, 0, len(p.Events))
	for _, e := range p.Events {
		events = append(events, ToEventResponse(e, now))
	}

	return EventPageResponse{
		Events: events,
		Metadata: Metadata{
			TotalItems:   p.TotalItems,
			TotalPages:   p.TotalPages(),
			CurrentPage:  p.Page,
			ItemsPerPage: p.Limit,
		},
	}
}

func ToEventListResponse(events []*domain.Event, now time.Time) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e, now))
	}
	return resp
}
