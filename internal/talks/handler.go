package talks

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

var timeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// TalkRequest is the body for POST /talks and PUT /talks/:id.
type TalkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Room        *string `json:"room"`
	EventID     int64   `json:"event_id" binding:"required"`
	SpeakerID   int64   `json:"speaker_id" binding:"required"`
}

func (req *TalkRequest) toModel(id int64) (*models.Talk, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	if !timeOfDay.MatchString(req.Time) {
		return nil, errors.New("invalid time, expected HH:MM")
	}
	return &models.Talk{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Room:        req.Room,
		EventID:     req.EventID,
		SpeakerID:   req.SpeakerID,
	}, nil
}

// Handler handles talk HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a talks handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /talks.
func (h *Handler) Create(c *gin.Context) {
	var req TalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	t, err := req.toModel(0)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.repo.Create(c.Request.Context(), t)
	if err != nil {
		if errors.Is(err, ErrNotSpeaker) {
			response.BadRequest(c, err.Error())
			return
		}
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /talks.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /talks/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid talk id")
		return
	}
	t, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "talk not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, t)
}

// Update handles PUT /talks/:id (whole-row replace).
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid talk id")
		return
	}
	var req TalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	t, err := req.toModel(id)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.repo.Update(c.Request.Context(), t)
	if err != nil {
		if errors.Is(err, ErrNotSpeaker) {
			response.BadRequest(c, err.Error())
			return
		}
		response.WriteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "talk not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /talks/:id. A talk that still has registrations or
// feedback cannot be deleted.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid talk id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "talk not found")
		return
	}
	response.Deleted(c, n)
}

// Options handles GET /talks/options, the id/title pairs for foreign-key
// selections.
func (h *Handler) Options(c *gin.Context) {
	refs, err := h.repo.ListRefs(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, refs)
}
