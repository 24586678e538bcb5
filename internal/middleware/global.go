package middleware

import (
	"net/http"

	"github.com/deppfellow/persons-api/internal/errs"
	"github.com/deppfellow/persons-api/internal/lib/response"
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/deppfellow/persons-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware installed on every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the origins listed in server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request. 4xx log at warn, 5xx at
// error together with the original error. At debug level the line also
// carries the JSON body captured by CaptureBody.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not run yet when a handler returns an
			// error, so derive the status from the error itself.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = toHTTPError(v.Error, v.Method).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if body, ok := GetRequestBody(c); ok {
				e = e.RawJSON("data", body)
			}

			// request_id, method, path and ip come from the context logger.
			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the only place error envelopes are written.
//
// Errors are first normalized into *errs.HTTPError: echo's own routing errors
// are translated, anything unknown is classified by sqlerr.HandleError.
// The original error is always logged; 5xx details never reach the client.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err, c.Request().Method)

	logger := GetLogger(c)

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}

	e.Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, response.FromError(httpErr))
}

func toHTTPError(err error, method string) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return fromEchoError(echoErr, method)
	}

	if errors.As(sqlerr.HandleError(err), &httpErr) {
		return httpErr
	}

	return errs.NewInternalServerError()
}

func fromEchoError(echoErr *echo.HTTPError, method string) *errs.HTTPError {
	switch echoErr.Code {
	case http.StatusNotFound:
		return errs.NewNotFoundError("route not found", nil)
	case http.StatusMethodNotAllowed:
		return errs.NewMethodNotAllowedError(method)
	case http.StatusTooManyRequests:
		return errs.NewTooManyRequestsError()
	}

	if echoErr.Code >= http.StatusInternalServerError {
		return errs.NewInternalServerError()
	}

	message := http.StatusText(echoErr.Code)
	if msg, ok := echoErr.Message.(string); ok {
		message = msg
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message: message,
		Status:  echoErr.Code,
	}
}
