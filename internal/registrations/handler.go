package registrations

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

// RegistrationRequest is the body for POST /registrations.
type RegistrationRequest struct {
	ParticipantID    int64  `json:"participant_id" binding:"required"`
	TalkID           int64  `json:"talk_id" binding:"required"`
	RegistrationDate string `json:"registration_date" binding:"required"`
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a registrations handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /registrations. A duplicate pair is rejected by the
// composite primary key.
func (h *Handler) Create(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.RegistrationDate)
	if err != nil {
		response.BadRequest(c, "invalid registration_date")
		return
	}
	reg := &models.Registration{ParticipantID: req.ParticipantID, TalkID: req.TalkID, RegistrationDate: date}
	n, err := h.repo.Create(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, ErrNotParticipant) {
			response.BadRequest(c, err.Error())
			return
		}
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /registrations.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// Get handles GET /registrations/:participant_id/:talk_id.
func (h *Handler) Get(c *gin.Context) {
	participantID, talkID, ok := pairParams(c)
	if !ok {
		return
	}
	reg, err := h.repo.Get(c.Request.Context(), participantID, talkID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "registration not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, reg)
}

// Delete handles DELETE /registrations/:participant_id/:talk_id.
func (h *Handler) Delete(c *gin.Context) {
	participantID, talkID, ok := pairParams(c)
	if !ok {
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), participantID, talkID)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "registration not found")
		return
	}
	response.Deleted(c, n)
}

func pairParams(c *gin.Context) (participantID, talkID int64, ok bool) {
	participantID, err := strconv.ParseInt(c.Param("participant_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid participant id")
		return 0, 0, false
	}
	talkID, err = strconv.ParseInt(c.Param("talk_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid talk id")
		return 0, 0, false
	}
	return participantID, talkID, true
}
