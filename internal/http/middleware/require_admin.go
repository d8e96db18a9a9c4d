package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ordersdesk.com/app/internal/shared/apperr"
)

const AdminTokenCookie = "admin_token"

// RequireAdmin accepts the token as a bearer header or the admin_token cookie.
// A ?token= query parameter is exchanged for the cookie and redirected away.
// An empty token disables the check.
func RequireAdmin(token string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		if q := c.Query("token"); q != "" && tokenEqual(q, token) {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(AdminTokenCookie, q, 12*60*60, "/", "", secure, true)
			u := *c.Request.URL
			v := u.Query()
			v.Del("token")
			u.RawQuery = v.Encode()
			c.Redirect(http.StatusFound, u.RequestURI())
			c.Abort()
			return
		}

		if tokenEqual(presentedToken(c), token) {
			c.Next()
			return
		}

		Fail(c, apperr.UnauthorizedErr("Admin token required."))
	}
}

func presentedToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if v, err := c.Cookie(AdminTokenCookie); err == nil {
		return v
	}
	return ""
}

func tokenEqual(got, want string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
