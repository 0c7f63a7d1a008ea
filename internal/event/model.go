package event

import (
	"time"
)

// ============================
// 🔷 Event Record
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	Location    string    `json:"location"`
	PosterURL   *string   `json:"poster_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================
// 🟡 Create Event Request (multipart/urlencoded form fields)
type CreateEventRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	EventDate   string `form:"event_date"` // 🛠 RFC3339, "2006-01-02T15:04[:05]" or "2006-01-02"
	Location    string `form:"location"`
}

// Accepted event_date forms. RFC3339 covers both the Zulu and the
// offset-qualified variants; the zoneless forms come from the datetime-local
// input on the frontend and are read as UTC.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
