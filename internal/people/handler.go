package people

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/boraai/conference-backend/internal/models"
	"github.com/boraai/conference-backend/pkg/response"
)

// PersonRequest is the body for POST /people and PUT /people/:id.
type PersonRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	Role  string  `json:"role" binding:"required,oneof=Participant Organizer Speaker"`
}

// Handler handles person HTTP endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates a people handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create handles POST /people.
func (h *Handler) Create(c *gin.Context) {
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	p := &models.Person{Name: req.Name, Email: req.Email, Phone: req.Phone, Role: models.Role(req.Role)}
	n, err := h.repo.Create(c.Request.Context(), p)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	response.Created(c, n)
}

// List handles GET /people.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /people/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "person not found")
			return
		}
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, p)
}

// Update handles PUT /people/:id (whole-row replace).
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	p := &models.Person{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone, Role: models.Role(req.Role)}
	n, err := h.repo.Update(c.Request.Context(), p)
	if err != nil {
		response.WriteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "person not found")
		return
	}
	response.Updated(c, n)
}

// Delete handles DELETE /people/:id. A person still referenced by events,
// talks, registrations, payments or feedback cannot be deleted.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid person id")
		return
	}
	n, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		response.DeleteFailure(c, err)
		return
	}
	if n == 0 {
		response.NotFound(c, "person not found")
		return
	}
	response.Deleted(c, n)
}

// Options handles GET /people/options?role=Organizer. It returns id/name
// pairs for foreign-key selections, filtered by role.
func (h *Handler) Options(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if !role.Valid() {
		response.BadRequest(c, "invalid or missing role")
		return
	}
	refs, err := h.repo.ListRefsByRole(c.Request.Context(), role)
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	response.OK(c, refs)
}
