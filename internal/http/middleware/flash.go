package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersdesk.com/app/internal/http/flash"
	"ordersdesk.com/app/pkg/view"
)

const CtxKeyFlash = "flash"

// Flash reads the one-shot flash cookie into the context and clears it.
func Flash(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(codec.CookieName); err == nil && v != "" {
			if f, err := codec.Decode(v); err == nil {
				c.Set(CtxKeyFlash, f)
			}
			// clear even when invalid so it is not retried
			setCookie(c, codec, "", -1)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}

func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	val, err := codec.Encode(f)
	if err != nil {
		return
	}
	setCookie(c, codec, val, codec.CookieMaxAge())
}

func setCookie(c *gin.Context, codec *flash.Codec, val string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, maxAge, "/", "", codec.Secure, true)
}
