package reports

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boraai/conference-backend/pkg/database"
	"github.com/boraai/conference-backend/pkg/response"
)

// Handler handles GET /reports/* endpoints.
type Handler struct {
	repo  *Repository
	cache *Cache
}

// NewHandler creates a reports handler. cache may be nil.
func NewHandler(repo *Repository, cache *Cache) *Handler {
	return &Handler{repo: repo, cache: cache}
}

type fetchFunc func(ctx context.Context) (database.Result, error)

func (h *Handler) serve(c *gin.Context, name string, fetch fetchFunc) {
	ctx := c.Request.Context()
	if res, ok := h.cache.Get(ctx, name); ok {
		response.OK(c, res)
		return
	}
	res, err := fetch(ctx)
	if err != nil {
		response.Internal(c, err.Error())
		return
	}
	h.cache.Set(ctx, name, res)
	response.OK(c, res)
}

// Registrations handles GET /reports/registrations.
func (h *Handler) Registrations(c *gin.Context) {
	h.serve(c, "registrations", h.repo.RegistrationsDetail)
}

// NonRegistrants handles GET /reports/non-registrants?event_id=N.
func (h *Handler) NonRegistrants(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid or missing event_id")
		return
	}
	h.serve(c, fmt.Sprintf("non-registrants:%d", eventID), func(ctx context.Context) (database.Result, error) {
		return h.repo.NonRegistrants(ctx, eventID)
	})
}

// AboveAverageTalks handles GET /reports/above-average-talks.
func (h *Handler) AboveAverageTalks(c *gin.Context) {
	h.serve(c, "above-average-talks", h.repo.AboveAverageTalks)
}

// OrganizerProductivity handles GET /reports/organizer-productivity.
func (h *Handler) OrganizerProductivity(c *gin.Context) {
	h.serve(c, "organizer-productivity", h.repo.OrganizerProductivity)
}

// PaymentStats handles GET /reports/payment-stats.
func (h *Handler) PaymentStats(c *gin.Context) {
	h.serve(c, "payment-stats", h.repo.PaymentStatsByStatus)
}

// FinancialActors handles GET /reports/financial-actors.
func (h *Handler) FinancialActors(c *gin.Context) {
	h.serve(c, "financial-actors", h.repo.FinancialActors)
}

// TalksWithoutFeedback handles GET /reports/talks-without-feedback.
func (h *Handler) TalksWithoutFeedback(c *gin.Context) {
	h.serve(c, "talks-without-feedback", h.repo.TalksWithoutFeedback)
}

// EventAttendance handles GET /reports/event-attendance.
func (h *Handler) EventAttendance(c *gin.Context) {
	h.serve(c, "event-attendance", h.repo.EventAttendance)
}
