package events

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// EventRequest is the body for POST /events and PUT /events/:id.
type EventRequest struct {
	Name        string  `json:"name" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Location    *string `json:"location"`
	OrganizerID int64   `json:"organizer_id" binding:"required"`
}

func (req *EventRequest) toModel(id int64) (*models.Event, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("invalid start_date")
	}
	e := &models.Event{
		ID:          id,
		Name:        req.Name,
		StartDate:   startDate,
		Location:    req.Location,
		OrganizerID: req.OrganizerID,
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, errors.New("invalid end_date")
		}
		if endDate.Before(startDate) {
			return nil, errors.New("end_date must not precede start_date")
		}
		e.EndDate = &endDate
	}
	return e, nil
}

// Handler handles event HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates an events handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /events.
func (h *Handler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	e, err := req.toModel(0)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.repo.Create(c.Request.Context(), e)
	if err != nil {
		if errors.Is(err, ErrNotOrganizer) {
			response.BadRequest(c, err.Error())
			return
		}
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /events.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /events/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	e, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "event not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, e)
}

// Update handles PUT /events/:id (whole-row replace).
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	e, err := req.toModel(id)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.repo.Update(c.Request.Context(), e)
	if err != nil {
		if errors.Is(err, ErrNotOrganizer) {
			response.BadRequest(c, err.Error())
			return
		}
		response.WriteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "event not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /events/:id. An event that still has talks or
// payments cannot be deleted.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "event not found")
		return
	}
	response.Deleted(c, n)
}

// Options handles GET /events/options, the id/name pairs for foreign-key
// selections.
func (h *Handler) Options(c *gin.Context) {
	refs, err := h.repo.ListRefs(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, refs)
}
