package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/web/common"
)

// ListStores handles GET /api/stores. Public so the login form can offer the
// store list before any session exists.
func (ep *Endpoint) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Store.GetStores()))
}

// ListBrands handles GET /api/brands.
func (ep *Endpoint) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Store.GetBrands()))
}
