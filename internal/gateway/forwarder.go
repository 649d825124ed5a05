// Package gateway implements the public edge tier: it relays API requests to
// the upstream resource API, forwarding only an allow-listed subset of
// headers and returning the upstream's status and JSON body unchanged.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// edgePrefix is the path prefix the gateway serves; it is stripped before
// the upstream API prefix is re-applied.
const edgePrefix = "/api"

// upstreamAPIPrefix is the path prefix the upstream API serves its routes
// under.
const upstreamAPIPrefix = "/api"

// allowedHeaders is the fixed set of header names (besides the x-* prefix)
// permitted to cross the gateway boundary. Everything else is dropped so
// hop-by-hop and host-identifying headers never reach the upstream.
var allowedHeaders = map[string]struct{}{
	"authorization":   {},
	"content-type":    {},
	"user-agent":      {},
	"accept":          {},
	"accept-encoding": {},
	"accept-language": {},
}

// Forwarder relays one inbound request per call to the configured upstream.
// It performs no retries: GET/HEAD forwards are safe for the caller to
// retry, everything else is forwarded at most once per inbound request.
type Forwarder struct {
	upstream *url.URL
	client   *http.Client
	logger   *slog.Logger
}

// NewForwarder creates a Forwarder relaying to the given upstream base URL.
// Each outbound call is bounded by the given timeout so a stalled upstream
// cannot hold inbound connections open indefinitely.
func NewForwarder(upstreamBase string, timeout time.Duration, logger *slog.Logger) (*Forwarder, error) {
	upstream, err := url.Parse(upstreamBase)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL %q: %w", upstreamBase, err)
	}
	if upstream.Scheme == "" || upstream.Host == "" {
		return nil, fmt.Errorf("upstream base URL %q must be absolute", upstreamBase)
	}

	return &Forwarder{
		upstream: upstream,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Handler returns the gin handler that forwards the inbound request.
func (f *Forwarder) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f.forward(c)
	}
}

// forward runs one forward-and-relay cycle.
func (f *Forwarder) forward(c *gin.Context) {
	targetURL := f.buildTargetURL(c.Request.URL)

	var body io.Reader
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			f.logger.Warn("failed to read inbound request body", slog.Any("error", err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}
		body = bytes.NewReader(data)
	}

	outbound, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, targetURL, body)
	if err != nil {
		f.logger.Error("failed to build upstream request", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach upstream API"})
		return
	}
	outbound.Header = filterHeaders(c.Request.Header)

	resp, err := f.client.Do(outbound)
	if err != nil {
		// Network-level failure: connection refused, timeout, DNS. Not
		// retried here; the caller owns retry policy.
		f.logger.Error("upstream request failed",
			slog.String("method", c.Request.Method),
			slog.String("target", targetURL),
			slog.Any("error", err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach upstream API"})
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("failed to read upstream response", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upstream response"})
		return
	}

	// Bodyless upstream responses (204 from deletes, 304, HEAD) carry
	// nothing to validate; relay the status as-is.
	if len(payload) == 0 {
		relayResponseHeaders(c, resp.Header)
		c.Status(resp.StatusCode)
		return
	}

	if !json.Valid(payload) {
		f.logger.Error("upstream returned non-JSON body",
			slog.String("target", targetURL),
			slog.Int("status", resp.StatusCode),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid response from upstream API"})
		return
	}

	relayResponseHeaders(c, resp.Header)
	c.Data(resp.StatusCode, "application/json", payload)
}

// buildTargetURL rewrites the inbound path onto the upstream: the edge
// prefix is stripped, the upstream API prefix re-applied, and the query
// string appended verbatim.
func (f *Forwarder) buildTargetURL(inbound *url.URL) string {
	path := strings.TrimPrefix(inbound.Path, edgePrefix)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target := f.upstream.String() + upstreamAPIPrefix + path
	if inbound.RawQuery != "" {
		target += "?" + inbound.RawQuery
	}
	return target
}

// relayResponseHeaders copies the allow-listed upstream response headers
// onto the client response.
func relayResponseHeaders(c *gin.Context, headers http.Header) {
	for name, values := range filterHeaders(headers) {
		for _, value := range values {
			c.Writer.Header().Add(name, value)
		}
	}
}

// filterHeaders copies the headers whose lower-cased name starts with "x-"
// or is in the allow-list. Matching is case-insensitive.
func filterHeaders(headers http.Header) http.Header {
	filtered := http.Header{}
	for name, values := range headers {
		lower := strings.ToLower(name)
		if _, ok := allowedHeaders[lower]; !ok && !strings.HasPrefix(lower, "x-") {
			continue
		}
		for _, value := range values {
			filtered.Add(name, value)
		}
	}
	return filtered
}
