package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"retailpulse.com/retailpulse/config"
	"retailpulse.com/retailpulse/session"
	"retailpulse.com/retailpulse/storage"
	"retailpulse.com/retailpulse/web/middlewares"
)

// Endpoint carries the injected collaborators every handler needs.
type Endpoint struct {
	Cfg      *config.Config
	Store    storage.Storage
	Sessions *session.Manager
	Logger   *logrus.Logger

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (ep *Endpoint) now() time.Time {
	if ep.Now != nil {
		return ep.Now().In(ep.Cfg.Location())
	}
	return time.Now().In(ep.Cfg.Location())
}

// Register wires the REST surface onto the /api group.
func Register(r *gin.RouterGroup, ep *Endpoint) {
	r.GET("/stores", ep.ListStores)
	r.POST("/login", ep.Login)
	r.POST("/admin/login", ep.AdminLogin)

	authed := r.Group("")
	authed.Use(middlewares.Authentication(ep.Sessions))
	{
		authed.POST("/logout", ep.Logout)
		authed.GET("/user/current", ep.CurrentUser)
		authed.PUT("/targets/:id", ep.UpdateTarget)
		authed.GET("/inventory/store/:storeId", ep.StoreInventory)
		authed.PUT("/inventory/:id", ep.UpdateInventory)
		authed.GET("/brands", ep.ListBrands)

		admin := authed.Group("/admin")
		admin.Use(middlewares.RequireAdmin())
		{
			admin.GET("/attendance", ep.AdminAttendance)
			admin.GET("/stores", ep.AdminStores)
			admin.GET("/targets", ep.AdminTargets)
			admin.GET("/summary", ep.AdminSummary)
			admin.GET("/performance", ep.AdminPerformance)
			admin.GET("/export/attendance", ep.ExportAttendance)
		}
	}
}
