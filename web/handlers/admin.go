package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/utils"
	"retailpulse.com/retailpulse/web/common"
)

// summarize aggregates today's attendance by status. Counts always add up to
// the number of today's records; activeStores is the distinct stores among
// them.
func (ep *Endpoint) summarize(now time.Time) Summary {
	loc := ep.Cfg.Location()
	today := utils.Filter(ep.Store.GetAllAttendance(), func(a model.FullAttendance) bool {
		return utils.SameDay(a.LoginTime, now, loc)
	})

	byStatus := utils.GroupBy(today, func(a model.FullAttendance) model.LoginStatus {
		return a.LoginStatus
	})
	byStore := utils.GroupBy(today, func(a model.FullAttendance) int {
		return a.StoreID
	})

	return Summary{
		TotalStores:  len(ep.Store.GetStores()),
		ActiveStores: len(byStore),
		EarlyCount:   len(byStatus[model.LoginEarly]),
		OntimeCount:  len(byStatus[model.LoginOntime]),
		LateCount:    len(byStatus[model.LoginLate]),
	}
}

// AdminAttendance handles GET /api/admin/attendance.
func (ep *Endpoint) AdminAttendance(c *gin.Context) {
	attendance := ep.Store.GetAllAttendance()
	c.JSON(http.StatusOK, common.NewSearchResponse(attendance, int64(len(attendance))))
}

// AdminStores handles GET /api/admin/stores.
func (ep *Endpoint) AdminStores(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Store.GetStores()))
}

// AdminTargets handles GET /api/admin/targets, collecting the joined targets
// of every store.
func (ep *Endpoint) AdminTargets(c *gin.Context) {
	all := make([]model.FullTarget, 0)
	for _, store := range ep.Store.GetStores() {
		all = append(all, ep.Store.GetTargetsByStoreID(store.ID)...)
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(all))
}

// AdminSummary handles GET /api/admin/summary.
func (ep *Endpoint) AdminSummary(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.summarize(ep.now())))
}

// AdminPerformance handles GET /api/admin/performance: every store's
// inventory with the reconciled status labels, through the same rule the
// staff update path uses.
func (ep *Endpoint) AdminPerformance(c *gin.Context) {
	stores := ep.Store.GetStores()
	out := utils.Map(stores, func(store model.Store) StorePerformance {
		return StorePerformance{
			Store: store,
			Items: toInventoryDTOs(ep.Store.GetInventoryByStoreID(store.ID)),
		}
	})
	c.JSON(http.StatusOK, common.NewSuccessResponse(out))
}
