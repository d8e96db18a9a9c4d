package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ordersdesk.com/app/internal/http/flash"
	"ordersdesk.com/app/internal/http/handlers/admin"
	"ordersdesk.com/app/internal/http/middleware"
	"ordersdesk.com/app/internal/http/validation"
	"ordersdesk.com/app/internal/orderlist"
)

type RouterConfig struct {
	FlashSecret   []byte
	AdminToken    string
	SecureCookies bool
}

func NewRouter(logger *slog.Logger, store admin.OrderStore, cfg RouterConfig) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterOrderRules(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	flashCodec := flash.NewCodec(cfg.FlashSecret, "flash", cfg.SecureCookies)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.Flash(flashCodec),
	)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, orderlist.ListPath) })

	ordersH := admin.NewOrdersHandler(store, flashCodec)
	guard := middleware.RequireAdmin(cfg.AdminToken, cfg.SecureCookies)

	a := r.Group("/a", guard)
	a.GET("/orders", ordersH.List)
	a.GET("/orders/new", ordersH.New)
	a.GET("/orders/:id", ordersH.Detail)

	api := r.Group("/api/admin", guard)
	api.GET("/orders", ordersH.APIList)

	return r, nil
}
