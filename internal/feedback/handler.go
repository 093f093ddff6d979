package feedback

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

// FeedbackRequest is the body for POST /feedback and PUT /feedback/:id.
// Score uses a pointer so a legitimate zero survives required-field binding.
type FeedbackRequest struct {
	ParticipantID int64   `json:"participant_id" binding:"required"`
	TalkID        int64   `json:"talk_id" binding:"required"`
	Score         *int    `json:"score" binding:"required,gte=0,lte=5"`
	Comment       *string `json:"comment"`
}

func (req *FeedbackRequest) toModel(id int64) *models.Feedback {
	return &models.Feedback{
		ID:            id,
		ParticipantID: req.ParticipantID,
		TalkID:        req.TalkID,
		Score:         *req.Score,
		Comment:       req.Comment,
	}
}

// Handler handles feedback HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a feedback handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /feedback. Submitting again for the same
// participant/talk pair replaces the earlier score and comment.
func (h *Handler) Create(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	n, err := h.repo.Upsert(c.Request.Context(), req.toModel(0))
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /feedback.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /feedback/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid feedback id")
		return
	}
	f, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "feedback not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, f)
}

// Update handles PUT /feedback/:id (whole-row replace).
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid feedback id")
		return
	}
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	n, err := h.repo.Update(c.Request.Context(), req.toModel(id))
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "feedback not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /feedback/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid feedback id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "feedback not found")
		return
	}
	response.Deleted(c, n)
}
