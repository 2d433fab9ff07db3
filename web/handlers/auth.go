package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/auth"
	"retailpulse.com/retailpulse/config"
	"retailpulse.com/retailpulse/core"
	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/storage"
	"retailpulse.com/retailpulse/utils"
	"retailpulse.com/retailpulse/web/common"
	"retailpulse.com/retailpulse/web/middlewares"
)

func (ep *Endpoint) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middlewares.SessionCookieName, token, int(ep.Cfg.SessionTTL.Seconds()), "/", "", false, true)
}

func (ep *Endpoint) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
}

// lookupPhone normalizes the submitted number when it parses; otherwise the
// raw string is tried as-is so lookups stay exact-match.
func (ep *Endpoint) lookupPhone(phone string) string {
	if normalized, err := auth.NormalizePhone(phone, ep.Cfg.PhoneRegion); err == nil {
		return normalized
	}
	return phone
}

// Login handles POST /api/login. The checks short-circuit in a fixed order:
// identity, store membership, store existence, geofence. Only when all pass
// is the attendance record created and the session established.
func (ep *Endpoint) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	user, ok := ep.Store.GetUserByPhone(ep.lookupPhone(req.Phone))
	if !ok {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("User not found with this phone number"))
		return
	}

	if user.StoreID != req.StoreID {
		c.JSON(http.StatusForbidden, common.NewErrorResponse("You are not authorized to access this store"))
		return
	}

	store, ok := ep.Store.GetStore(req.StoreID)
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Store not found"))
		return
	}

	atStore, err := core.WithinRadius(store.Coordinates, *req.Coordinates.Latitude, *req.Coordinates.Longitude, ep.Cfg.GeofenceRadiusMeters)
	if err != nil {
		config.LogError(ep.Logger, "handlers", "Login", "store coordinates", store.ID, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Something went wrong"))
		return
	}
	if !atStore {
		c.JSON(http.StatusForbidden, common.NewErrorResponse("You must be at the store location to login"))
		return
	}

	now := ep.now()
	attendance, open := ep.Store.GetOpenAttendance(user.ID)
	if open && !utils.SameDay(attendance.LoginTime, now, ep.Cfg.Location()) {
		// a record left open from a previous day is closed at its session
		// deadline, never carried into today
		closedAt := attendance.LoginTime.Add(ep.Cfg.SessionTTL)
		ep.Store.UpdateAttendance(attendance.ID, storage.AttendanceUpdate{
			LogoutTime: &closedAt,
			Duration:   utils.Ptr(core.DurationMinutes(attendance.LoginTime, closedAt)),
		})
		open = false
	}
	if !open {
		attendance, err = ep.Store.CreateAttendance(model.Attendance{
			UserID:        user.ID,
			StoreID:       user.StoreID,
			LoginTime:     now,
			LoginStatus:   core.ClassifyLogin(now),
			FaceScanLogin: req.FaceScan,
		})
		if err != nil {
			config.LogError(ep.Logger, "handlers", "Login", "create attendance", user.ID, err)
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Something went wrong"))
			return
		}
	}

	target, ok := ep.Store.GetTargetByUserIDAndDate(user.ID, now)
	if !ok {
		target = ep.Store.CreateTarget(model.Target{
			UserID:                  user.ID,
			StoreID:                 user.StoreID,
			EngagementDailyTarget:   ep.Cfg.EngagementDailyTarget,
			ConversationDailyTarget: ep.Cfg.ConversationDailyTarget,
			Date:                    now,
		})
	}

	_, token, err := ep.Sessions.Create(user.ID, user.StoreID, false)
	if err != nil {
		config.LogError(ep.Logger, "handlers", "Login", "create session", user.ID, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Something went wrong"))
		return
	}
	ep.setSessionCookie(c, token)

	c.JSON(http.StatusOK, common.NewSuccessResponse(LoginResponse{
		User:        user,
		Store:       store,
		Attendance:  attendance,
		Target:      target,
		Inventory:   toInventoryDTOs(ep.Store.GetInventoryByStoreID(user.StoreID)),
		LoginStatus: attendance.LoginStatus,
	}))
}

// AdminLogin handles POST /api/admin/login. Failures are deliberately
// uniform so credentials cannot be probed.
func (ep *Endpoint) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	user, ok := ep.Store.GetUserByPhone(ep.lookupPhone(req.Phone))
	if !ok || !user.IsAdmin || !auth.VerifyPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid credentials"))
		return
	}

	_, token, err := ep.Sessions.Create(user.ID, user.StoreID, true)
	if err != nil {
		config.LogError(ep.Logger, "handlers", "AdminLogin", "create session", user.ID, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Something went wrong"))
		return
	}
	ep.setSessionCookie(c, token)

	c.JSON(http.StatusOK, common.NewSuccessResponse(AdminLoginResponse{
		User:       user,
		Stores:     ep.Store.GetStores(),
		Attendance: ep.Store.GetAllAttendance(),
		Summary:    ep.summarize(ep.now()),
	}))
}

// Logout handles POST /api/logout. For staff it closes the open attendance
// record; logging out with nothing open is a no-op, not an error.
func (ep *Endpoint) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	sess, _ := middlewares.CurrentSession(c)

	if !sess.IsAdmin {
		if open, ok := ep.Store.GetOpenAttendance(sess.UserID); ok {
			now := ep.now()
			ep.Store.UpdateAttendance(open.ID, storage.AttendanceUpdate{
				LogoutTime:     &now,
				Duration:       utils.Ptr(core.DurationMinutes(open.LoginTime, now)),
				FaceScanLogout: req.FaceScan,
			})
		}
	}

	ep.Sessions.Destroy(sess.ID)
	ep.clearSessionCookie(c)

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"message": "Logged out successfully"}))
}

// CurrentUser handles GET /api/user/current.
func (ep *Endpoint) CurrentUser(c *gin.Context) {
	sess, _ := middlewares.CurrentSession(c)

	user, uok := ep.Store.GetUser(sess.UserID)
	store, sok := ep.Store.GetStore(sess.StoreID)
	if !uok || !sok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("User or store not found"))
		return
	}

	resp := CurrentUserResponse{User: user, Store: store}
	if att, ok := ep.Store.GetLatestAttendance(sess.UserID); ok {
		resp.Attendance = &att
	}
	if target, ok := ep.Store.GetTargetByUserIDAndDate(sess.UserID, ep.now()); ok {
		resp.Target = &target
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(resp))
}
