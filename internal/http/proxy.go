package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/baobao/elxup/internal/core"
)

// upstreamBase is the ElevenLabs API origin the proxy forwards to.
const upstreamBase = "https://api.elevenlabs.io"

// selectAPIKey picks the key for proxied requests: explicit header first,
// then environment, then the stored credential.
func selectAPIKey(c *gin.Context) (string, error) {
	if key := c.GetHeader("X-Elxup-Key"); key != "" {
		return key, nil
	}
	if key := os.Getenv("ELEVENLABS_API_KEY"); key != "" {
		return key, nil
	}
	return core.LoadAPIKey()
}

// proxyHandler forwards /v1/* requests to the ElevenLabs API, injecting the
// xi-api-key header so the extension under development never sees the key.
func proxyHandler(c *gin.Context) {
	apiKey, err := selectAPIKey(c)
	if err != nil || apiKey == "" {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": map[string]string{
				"message": "no API key available: pass X-Elxup-Key or run 'elxup login'",
				"type":    "key_error",
			},
		})
		return
	}

	target, err := url.Parse(upstreamBase)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": map[string]string{
				"message": "invalid upstream URL",
				"type":    "server_error",
			},
		})
		return
	}

	proxy := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.Host = target.Host

			// Inject upstream auth
			req.Header.Set("xi-api-key", apiKey)

			// Remove local-only headers
			req.Header.Del("X-Elxup-Key")
			req.Header.Del("Authorization")
		},
	}

	proxy.ServeHTTP(c.Writer, c.Request)
}
