package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boraai/conference-backend/pkg/pgerr"
)

// Body is the standard API response envelope.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteResult reports the outcome of a write operation.
type WriteResult struct {
	RowsAffected int64 `json:"rows_affected"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created sends a 201 JSON response with the affected-row count.
func Created(c *gin.Context, rows int64) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: WriteResult{RowsAffected: rows}})
}

// Updated sends a 200 JSON response with the affected-row count.
func Updated(c *gin.Context, rows int64) {
	c.JSON(http.StatusOK, Body{Success: true, Data: WriteResult{RowsAffected: rows}})
}

// Deleted sends a 200 JSON response with the affected-row count.
func Deleted(c *gin.Context, rows int64) {
	c.JSON(http.StatusOK, Body{Success: true, Data: WriteResult{RowsAffected: rows}})
}

// BadRequest sends 400 with error message.
func BadRequest(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Error: err})
}

// NotFound sends 404.
func NotFound(c *gin.Context, err string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Error: err})
}

// Conflict sends 409.
func Conflict(c *gin.Context, err string) {
	c.JSON(http.StatusConflict, Body{Success: false, Error: err})
}

// Internal sends 500.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Error: err})
}

// WriteFailure maps a failed create/update to a response: constraint
// rejections become 400 with the database message verbatim, everything else
// is a 500.
func WriteFailure(c *gin.Context, err error) {
	if pgerr.IsConstraint(err) {
		BadRequest(c, err.Error())
		return
	}
	Internal(c, err.Error())
}

// DeleteFailure maps a failed delete: a foreign-key rejection means the row
// is still referenced by dependents and becomes 409.
func DeleteFailure(c *gin.Context, err error) {
	if pgerr.CodeOf(err) == pgerr.ForeignKeyViolation {
		Conflict(c, err.Error())
		return
	}
	WriteFailure(c, err)
}
