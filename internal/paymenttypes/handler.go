package paymenttypes

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/pkg/response"
)

// PaymentTypeRequest is the body for POST /payment-types and PUT /payment-types/:id.
type PaymentTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// Handler handles payment-type HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a payment-types handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /payment-types.
func (h *Handler) Create(c *gin.Context) {
	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	n, err := h.repo.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /payment-types. The same payload serves the foreign-key
// selection in payment forms.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /payment-types/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment type id")
		return
	}
	pt, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "payment type not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, pt)
}

// Update handles PUT /payment-types/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment type id")
		return
	}
	var req PaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	n, err := h.repo.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "payment type not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /payment-types/:id. A type still referenced by
// payments cannot be deleted.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid payment type id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "payment type not found")
		return
	}
	response.Deleted(c, n)
}
