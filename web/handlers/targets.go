package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/storage"
	"retailpulse.com/retailpulse/web/common"
)

// UpdateTarget handles PUT /api/targets/:id. All fields are optional; only
// the ones present are touched.
func (ep *Endpoint) UpdateTarget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var req UpdateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	target, ok := ep.Store.UpdateTarget(id, storage.TargetUpdate{
		EngagementDailyTarget:   req.EngagementDailyTarget,
		EngagementAchieved:      req.EngagementAchieved,
		ConversationDailyTarget: req.ConversationDailyTarget,
		ConversationAchieved:    req.ConversationAchieved,
	})
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Target not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(target))
}
