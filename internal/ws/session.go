package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"job-routing/internal/delivery/http/dto"
	"job-routing/internal/domain/listing"
	"job-routing/internal/usecase"

	"github.com/google/uuid"
)

const (
	EventQuery   = "query"
	EventPage    = "page"
	EventRefresh = "refresh"

	UpdateBoard = "board"
	UpdateError = "error"
)

var ErrInvalidEvent = errors.New("invalid event")

// Event is one user input on a board session: a search-box edit or a page
// click.
type Event struct {
	Type  string  `json:"type"`
	Query *string `json:"query,omitempty"`
	Page  *int    `json:"page,omitempty"`
}

type Update struct {
	Type    string               `json:"type"`
	Session string               `json:"session"`
	Query   string               `json:"query"`
	Page    int                  `json:"page"`
	Data    *dto.JobListResponse `json:"data,omitempty"`
	Message string               `json:"message,omitempty"`
}

// Reduce applies e to s. Invalid events leave the state untouched.
func Reduce(s listing.State, e Event) (listing.State, error) {
	switch e.Type {
	case EventQuery:
		if e.Query == nil {
			return s, fmt.Errorf("%w: query event without query", ErrInvalidEvent)
		}
		return listing.ApplyQuery(s, *e.Query), nil
	case EventPage:
		if e.Page == nil {
			return s, fmt.Errorf("%w: page event without page", ErrInvalidEvent)
		}
		return listing.ApplyPage(s, *e.Page), nil
	case EventRefresh:
		return s, nil
	default:
		return s, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
}

// Session is the state of one connected board. It is owned by a single
// client read loop and is not safe for concurrent use.
type Session struct {
	id    string
	state listing.State
	uc    usecase.JobListUsecase
}

func NewSession(uc usecase.JobListUsecase) *Session {
	return &Session{id: uuid.NewString(), state: listing.NewState(), uc: uc}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() listing.State {
	return s.state
}

// Snapshot computes the update for the current state.
func (s *Session) Snapshot(ctx context.Context) Update {
	out, err := s.uc.ListJobs(ctx, usecase.JobListParams{Query: s.state.Query, Page: s.state.Page})
	if err != nil {
		return s.errorUpdate("failed to list jobs")
	}
	data := dto.NewJobListResponse(out)
	return Update{
		Type:    UpdateBoard,
		Session: s.id,
		Query:   s.state.Query,
		Page:    s.state.Page,
		Data:    &data,
	}
}

// Handle decodes one inbound message, applies it and returns the update to
// push back.
func (s *Session) Handle(ctx context.Context, raw []byte) Update {
	var e Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return s.errorUpdate("malformed event")
	}
	next, err := Reduce(s.state, e)
	if err != nil {
		return s.errorUpdate(err.Error())
	}
	s.state = next
	return s.Snapshot(ctx)
}

func (s *Session) errorUpdate(msg string) Update {
	return Update{
		Type:    UpdateError,
		Session: s.id,
		Query:   s.state.Query,
		Page:    s.state.Page,
		Message: msg,
	}
}
