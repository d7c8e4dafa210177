// Package http provides the local preview server for generated extension
// files.
package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/baobao/elxup/internal/extension"
)

// StartServer starts the preview HTTP server rooted at the extension
// directory.
func StartServer(port int, dir string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS configuration
	allowOrigins := loadCorsOrigins()
	allowCredentials := true
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Snapshot routes
	api := r.Group("/api")
	{
		api.GET("/models", snapshotHandler(dir, extension.ModelsSnapshotFile))
		api.GET("/voices", snapshotHandler(dir, extension.VoicesSnapshotFile))
		api.GET("/report", reportHandler(dir))
		api.GET("/health", healthHandler(dir))
	}

	// Proxy routes (authenticated with the stored credential)
	v1 := r.Group("/v1")
	{
		v1.GET("/models", proxyHandler)
		v1.GET("/voices", proxyHandler)
		v1.GET("/user/subscription", proxyHandler)
	}

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("🌐 Snapshots: http://localhost%s/api\n", addr)
	fmt.Printf("🔀 API proxy: http://localhost%s/v1\n", addr)
	fmt.Println()

	return r.Run(addr)
}

// snapshotHandler serves a generated JSON snapshot file, 404 when it was
// never generated.
func snapshotHandler(dir, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not generated yet; run 'elxup update'", name)})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}

func reportHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := os.ReadFile(filepath.Join(dir, extension.ReportFile))
		if os.IsNotExist(err) {
			c.String(http.StatusNotFound, "report not generated yet; run 'elxup update'")
			return
		}
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
	}
}

func healthHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists := func(name string) bool {
			_, err := os.Stat(filepath.Join(dir, name))
			return err == nil
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"dir":    dir,
			"snapshots": gin.H{
				"models": exists(extension.ModelsSnapshotFile),
				"voices": exists(extension.VoicesSnapshotFile),
				"report": exists(extension.ReportFile),
			},
		})
	}
}

func loadCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("ELXUP_CORS_ORIGINS"))
	if raw == "" {
		return []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}
	items := []string{}
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			items = append(items, value)
		}
	}
	if len(items) == 0 {
		return []string{"*"}
	}
	return items
}
