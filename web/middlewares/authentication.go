package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"retailpulse.com/retailpulse/session"
	"retailpulse.com/retailpulse/web/common"
)

// SessionCookieName is the cookie the signed session token travels in.
const SessionCookieName = "retailpulse.SessionCookie"

// SessionKey is the gin context key the resolved session is stored under.
const SessionKey = "session"

// Authentication gates staff endpoints on a live session. The token is read
// from a Bearer header when present, otherwise from the session cookie.
func Authentication(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Unauthorized"))
				return
			}
			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Unauthorized"))
				return
			}
			tokenStr = parts[1]
		}

		sess, ok := sessions.Resolve(tokenStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired session"))
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireAdmin gates admin endpoints. Runs after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("Forbidden"))
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session Authentication stored on the context.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
