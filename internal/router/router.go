// Package router builds the echo instance: it installs the global
// middleware chain and the error handler, then registers the route groups.
package router

import (
	"github.com/deppfellow/persons-api/internal/handler"
	"github.com/deppfellow/persons-api/internal/middleware"
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the fully wired echo instance.
//
// Middleware order matters: the request id must exist before the tracing
// attributes and the request logger are built, the request logger must wrap
// Recover so a panic is still logged as a 500, and everything that can reject
// a request (CORS, rate limit, body limit) runs inside the request logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.BodyLimit(),
		middlewares.Global.CaptureBody(),
	)

	registerSystemRoutes(router, h)
	registerPersonRoutes(router, h)

	return router
}
