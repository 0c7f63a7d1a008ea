package event

import (
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eagleboard/eagleboard-backend/internal/upload"
)

// ValidationError rejects caller-supplied creation input. It is never
// retried; the handler maps it to a 400 with the reason as the payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Service wraps business logic for bulletin-board events
type Service struct {
	Repo    Repository
	Uploads *upload.Sink

	// RequireFutureDate rejects events whose date is not strictly in the
	// future. On by default; earlier revisions of the service skipped it.
	RequireFutureDate bool
}

func NewService(r Repository, uploads *upload.Sink, requireFutureDate bool) *Service {
	return &Service{
		Repo:              r,
		Uploads:           uploads,
		RequireFutureDate: requireFutureDate,
	}
}

// ===========================
// 🎯 Create Event
//
// Validation is fail-closed: any missing field or unparsable date rejects the
// request and nothing is appended. The poster is written before the record so
// a stored record always references a poster that exists; a failed poster
// write aborts creation entirely.
func (s *Service) CreateEvent(req *CreateEventRequest, poster *multipart.FileHeader) (*Event, error) {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(req.EventDate) == "" {
		missing = append(missing, "event_date")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid event_date %q. Use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD", req.EventDate)}
	}

	if s.RequireFutureDate && !eventDate.After(time.Now().UTC()) {
		return nil, &ValidationError{Reason: "event_date must be in the future"}
	}

	var posterURL *string
	if url, err := s.Uploads.Store(poster); err != nil {
		return nil, err
	} else if url != "" {
		posterURL = &url
	}

	e := Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate.Format(time.RFC3339),
		Location:    req.Location,
		PosterURL:   posterURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Append(e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📆 List Upcoming Events
//
// Expiry is a derived state recomputed from the wall clock on every call,
// never persisted. Records whose stored date no longer parses are retained
// (fail-open) so malformed legacy data does not silently disappear; they sort
// after all parsable records in insertion order.
func (s *Service) ListUpcomingEvents() ([]Event, error) {
	all, err := s.Repo.LoadAll()
	if err != nil {
		return nil, err
	}

	type entry struct {
		ev     Event
		when   time.Time
		parsed bool
	}

	now := time.Now().UTC()
	upcoming := []entry{}
	for _, e := range all {
		when, err := parseEventDate(e.EventDate)
		if err != nil {
			upcoming = append(upcoming, entry{ev: e})
			continue
		}
		if when.After(now) {
			upcoming = append(upcoming, entry{ev: e, when: when, parsed: true})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if a.parsed && b.parsed {
			return a.when.Before(b.when)
		}
		return a.parsed && !b.parsed
	})

	events := make([]Event, 0, len(upcoming))
	for _, en := range upcoming {
		events = append(events, en.ev)
	}
	return events, nil
}
