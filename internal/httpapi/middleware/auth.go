package middleware

import (
	"net/http"
	"strings"

	"github.com/axiomai/axiom-server/internal/auth"
	"github.com/axiomai/axiom-server/internal/common"
	"github.com/axiomai/axiom-server/internal/config"
	"github.com/axiomai/axiom-server/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// UserKey is the gin context key holding the authenticated *models.User.
	UserKey = "currentUser"

	cookieName = "token"
)

// ExtractToken pulls the session credential from the cookie or the
// Authorization header. Returns "" when absent or explicitly cleared.
func ExtractToken(c *gin.Context) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" && v != "none" {
		return v
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// SetSessionCookie installs the credential as an HttpOnly cookie. SameSite and
// Secure follow the deployment environment.
func SetSessionCookie(c *gin.Context, token string, maxAgeSeconds int, production bool) {
	if production {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(cookieName, token, maxAgeSeconds, "/", "", production, true)
}

// ClearSessionCookie performs the defensive logout: the client-held credential
// is replaced with an already-expired placeholder.
func ClearSessionCookie(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(cookieName, "none", -1, "/", "", production, true)
}

// AuthRequired gates protected routes. It verifies the token, loads the user,
// and rejects inactive accounts. Every failure also clears the cookie.
func AuthRequired(gdb *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			common.Fail(c, http.StatusUnauthorized, "Please login to access this resource")
			c.Abort()
			return
		}

		claims, err := auth.ParseJWT(token, cfg.JWTSecret)
		if err != nil {
			ClearSessionCookie(c, cfg.IsProduction())
			common.Fail(c, http.StatusUnauthorized, "Invalid or expired token. Please login again.")
			c.Abort()
			return
		}

		var user models.User
		if err := gdb.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil || !user.IsActive {
			ClearSessionCookie(c, cfg.IsProduction())
			common.Fail(c, http.StatusUnauthorized, "User no longer exists or is inactive.")
			c.Abort()
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user installed by AuthRequired.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// RequireRole guards a route group behind a role check.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			common.Fail(c, http.StatusUnauthorized, "Please login first")
			c.Abort()
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		common.Fail(c, http.StatusForbidden, "You do not have permission to perform this action")
		c.Abort()
	}
}
