package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	// RequestBodyKey is the echo context key of the captured JSON body.
	RequestBodyKey = "request_body"

	// MaxBodySize caps every request body; larger bodies get 413.
	MaxBodySize = "1M"

	// maxLoggedBody is the largest body copied into the request log.
	maxLoggedBody = 4 << 10
)

// BodyLimit rejects bodies larger than MaxBodySize.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(MaxBodySize)
}

// CaptureBody keeps a copy of small JSON request bodies so RequestLogger can
// add them to the API line as "data". It only runs when the server logger is
// at debug level; the body is logged as sent, without redaction.
func (global *GlobalMiddlewares) CaptureBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || !isJSONContentType(req.Header.Get(echo.HeaderContentType)) {
				return next(c)
			}
			if global.server.Logger.GetLevel() > zerolog.DebugLevel {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			if len(body) <= maxLoggedBody {
				var compact bytes.Buffer
				if err := json.Compact(&compact, body); err == nil {
					c.Set(RequestBodyKey, json.RawMessage(compact.Bytes()))
				}
			}

			return next(c)
		}
	}
}

// GetRequestBody returns the body stored by CaptureBody, if any.
func GetRequestBody(c echo.Context) (json.RawMessage, bool) {
	body, ok := c.Get(RequestBodyKey).(json.RawMessage)
	return body, ok && len(body) > 0
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}
