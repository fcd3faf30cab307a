package common

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"football-club/matchday/internal/logging"
)

// LogHTTPRequest dumps an outbound request at debug level. The Authorization
// header is masked.
func LogHTTPRequest(req *http.Request) {
	// Make a copy of the body if it exists
	var bodyCopy []byte
	if req.Body != nil {
		bodyCopy, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyCopy))
	}

	authHeader := req.Header.Get("Authorization")
	if authHeader != "" {
		req.Header.Set("Authorization", "Bearer ***")
	}

	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		logging.Debug("Failed to dump HTTP request", "error", err.Error())
	} else {
		logging.Debug("Outbound HTTP request", "dump", strings.TrimSpace(string(dump)))
	}

	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	// Reset the body again (req.Body may be read again later)
	if bodyCopy != nil {
		req.Body = io.NopCloser(bytes.NewReader(bodyCopy))
	}
}
