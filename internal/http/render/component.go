package render

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"ordersdesk.com/app/internal/http/flash"
	"ordersdesk.com/app/internal/http/middleware"
	"ordersdesk.com/app/internal/shared/apperr"
	"ordersdesk.com/app/pkg/view"
)

// Component writes an HTML component with the given status.
func Component(c *gin.Context, status int, comp templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
	}
}

// RedirectWithFlash sets a one-shot message and redirects (302).
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
