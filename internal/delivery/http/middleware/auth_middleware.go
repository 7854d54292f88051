package middleware

import (
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware copies the current session principal into the gin
// context. Requests are never rejected here; RequireRole does that.
func SessionMiddleware(sessionUC domain.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionUC.CurrentSession(c)
		if sess.Active() {
			c.Set(string(domain.KeyUserID), sess.User.ID)
			c.Set(string(domain.KeyUserEmail), sess.User.Email)
			c.Set(string(domain.KeyUserRole), string(sess.Role))
		}
		c.Next()
	}
}

// RequireRole aborts with 401 when nobody is logged in and with 403 when the
// session role is not one of roles. No roles means any session will do.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "Login required", nil)
			c.Abort()
			return
		}

		role := domain.Role(c.GetString(string(domain.KeyUserRole)))
		if len(roles) > 0 && !slices.Contains(roles, role) {
			response.Error(c, http.StatusForbidden, "Your role cannot access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
