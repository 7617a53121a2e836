package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// APIPrefix is the fixed path prefix both deployments forward under.
const APIPrefix = "/api/v1"

// Request headers that must not reach the upstream: Host and Connection are
// hop-by-hop, Content-Length becomes invalid once the body is re-framed.
var droppedRequestHeaders = map[string]struct{}{
	"Host":           {},
	"Connection":     {},
	"Content-Length": {},
}

// Forwarder rewrites incoming requests onto a configured upstream origin and
// streams the response back. It is an intentionally dumb pipe: no retries,
// no caching, no redirect following.
type Forwarder struct {
	upstream string
	client   *http.Client
}

// NewForwarder creates a forwarder for the given upstream base URL.
func NewForwarder(upstream string) *Forwarder {
	return &Forwarder{
		upstream: strings.TrimRight(strings.TrimSpace(upstream), "/"),
		client: &http.Client{
			// Pass raw redirect responses through to the caller.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Upstream returns the configured upstream base URL.
func (f *Forwarder) Upstream() string {
	return f.upstream
}

// Handle forwards a request captured by the /api/v1/*path wildcard route.
func (f *Forwarder) Handle(c *gin.Context) {
	f.forward(c, f.upstream+APIPrefix+c.Param("path"))
}

// HandleHealth forwards the upstream health endpoint.
func (f *Forwarder) HandleHealth(c *gin.Context) {
	f.forward(c, f.upstream+"/health")
}

func (f *Forwarder) forward(c *gin.Context, target string) {
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	var body io.Reader
	if !isBodyless(c.Request.Method) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to build upstream request"})
		return
	}
	copyRequestHeaders(req.Header, c.Request.Header)

	resp, err := f.client.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"target": target,
		}).WithError(err).Warn("upstream request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
		return
	}
	defer resp.Body.Close()

	header := c.Writer.Header()
	for key, values := range resp.Header {
		// The streamed body is the decoded bytes; the original encoding
		// header would mislead the client.
		if http.CanonicalHeaderKey(key) == "Content-Encoding" {
			continue
		}
		header[key] = values
	}
	c.Writer.WriteHeader(resp.StatusCode)

	// Stream without buffering so large media and range responses pass
	// through.
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		log.WithField("target", target).WithError(err).Debug("response stream interrupted")
	}
}

func copyRequestHeaders(dst, src http.Header) {
	for key, values := range src {
		if _, drop := droppedRequestHeaders[http.CanonicalHeaderKey(key)]; drop {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func isBodyless(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
