package payments

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

// PaymentRequest is the body for POST /payments and PUT /payments/:id.
// Amount must be positive; the schema rejects zero and negative values as
// well, so the binding is a fast path, not the source of truth.
type PaymentRequest struct {
	ParticipantID int64   `json:"participant_id" binding:"required"`
	EventID       int64   `json:"event_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Status        string  `json:"status" binding:"required,oneof=Pending Confirmed Canceled"`
	PaymentTypeID *int64  `json:"payment_type_id"`
}

func (req *PaymentRequest) toModel(id int64) *models.Payment {
	return &models.Payment{
		ID:            id,
		ParticipantID: req.ParticipantID,
		EventID:       req.EventID,
		Amount:        req.Amount,
		Status:        req.Status,
		PaymentTypeID: req.PaymentTypeID,
	}
}

// Handler handles payment HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a payments handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /payments.
func (h *Handler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	n, err := h.repo.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /payments.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /payments/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}
	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "payment not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, p)
}

// Update handles PUT /payments/:id (whole-row replace).
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}
	var req PaymentRequest
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
		response.NotFound(c, "payment not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /payments/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "payment not found")
		return
	}
	response.Deleted(c, n)
}
