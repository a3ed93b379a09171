package controller

import (
	"net/http"
	"strconv"

	"todolist-api/internal/apperr"
	"todolist-api/internal/dto"

	"github.com/gin-gonic/gin"
)

const defaultActivityLimit = 50

// ListActivity returns the most recent activity events. Admin only.
// Supports ?limit=N (capped at 500).
func (h *Controller) ListActivity(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := principal(c)
	if !ok {
		return
	}
	if !p.IsAdmin() {
		fail(c, apperr.AccessDeniedf("Access denied"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultActivityLimit)))
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > 500 {
		limit = 500
	}
	events, err := h.stores.Activity.Recent(ctx, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EventResponses(events))
}
