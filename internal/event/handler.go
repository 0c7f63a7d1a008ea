package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Submit a campus event with an optional poster image. Form fields title, description, event_date and location are required.
// @Tags events
// @Accept mpfd
// @Produce json
// @Param title formData string true "Event title"
// @Param description formData string true "Event description"
// @Param event_date formData string true "Event date-time (RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD)"
// @Param location formData string true "Event location"
// @Param poster formData file false "Poster image"
// @Success 201 {object} event.Event
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	req := CreateEventRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		EventDate:   c.PostForm("event_date"),
		Location:    c.PostForm("location"),
	}

	// Absent poster is a legitimate input, not an error
	poster, err := c.FormFile("poster")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poster upload: " + err.Error()})
		return
	}

	created, err := h.Service.CreateEvent(&req, poster)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListEvents godoc
// @Summary List upcoming events
// @Description Returns all non-expired events, soonest first. Always succeeds; an empty board is an empty array.
// @Tags events
// @Produce json
// @Success 200 {array} event.Event
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListUpcomingEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
