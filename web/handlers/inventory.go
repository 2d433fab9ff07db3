package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/web/common"
)

// StoreInventory handles GET /api/inventory/store/:storeId, returning the
// joined rows with their reconciled stock status.
func (ep *Endpoint) StoreInventory(c *gin.Context) {
	storeID, err := strconv.Atoi(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid store id"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(toInventoryDTOs(ep.Store.GetInventoryByStoreID(storeID))))
}

// UpdateInventory handles PUT /api/inventory/:id. The closing stock is
// recorded and units sold recomputed server-side; clients never submit the
// derived figure.
func (ep *Endpoint) UpdateInventory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	inv, ok := ep.Store.UpdateInventory(id, *req.ClosingStock)
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Inventory item not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(inv))
}
