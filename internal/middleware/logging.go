// Package middleware holds the gin middleware of the API server.
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"bizops-dashboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// maxLoggedBody truncates request and response bodies in the access log.
const maxLoggedBody = 4 << 10

// redactedKeys are top-level JSON keys whose values never reach the access log.
var redactedKeys = []string{"password", "accessToken", "refreshToken"}

// bodyLogWriter captures the response body while writing it through.
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	if room := maxLoggedBody - w.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogger logs one line per request with status, latency, request id
// and the JSON bodies exchanged. Multipart bodies are not captured, and
// credentials and tokens are masked.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if c.Request.Body != nil && !strings.HasPrefix(c.ContentType(), "multipart/") {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		if len(requestBody) > maxLoggedBody {
			requestBody = requestBody[:maxLoggedBody]
		}
		log.Infow("HTTP Request Log",
			"statusCode", c.Writer.Status(),
			"latency", time.Since(startTime).String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"requestId", c.GetString(RequestIDKey),
			"requestBody", redact(requestBody),
			"responseBody", redact(blw.body.Bytes()),
		)
	}
}

// redact masks the credential keys of a JSON object body. Bodies that are not
// a complete JSON object are returned unchanged unless they mention one of the
// keys, in which case they are dropped.
func redact(body []byte) string {
	if !mentionsSecret(body) {
		return string(body)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "[redacted]"
	}
	for _, key := range redactedKeys {
		if _, ok := fields[key]; ok {
			fields[key] = json.RawMessage(`"[redacted]"`)
		}
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return "[redacted]"
	}
	return string(out)
}

func mentionsSecret(body []byte) bool {
	for _, key := range redactedKeys {
		if bytes.Contains(body, []byte(`"`+key+`"`)) {
			return true
		}
	}
	return false
}
