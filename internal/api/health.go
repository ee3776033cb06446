// Package api provides HTTP handlers for the rentdesk server.
package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	log       *logrus.Logger
	version   string
	dataDir   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(log *logrus.Logger, version, dataDir string) *HealthHandler {
	return &HealthHandler{
		log:       log,
		version:   version,
		dataDir:   dataDir,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	UptimeSeconds float64  `json:"uptime_seconds"`
	DataDir       string   `json:"data_dir"`
	DataDirExists bool     `json:"data_dir_exists"`
	DataFiles     []string `json:"data_files"`
}

// Health handles GET /api/v1/health — reports status and probes the data
// directory, which the desktop shell uses to verify its bundled server
// found its files.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := healthResponse{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		DataDir:       h.dataDir,
		DataFiles:     []string{},
	}

	entries, err := os.ReadDir(h.dataDir)
	if err == nil {
		resp.DataDirExists = true
		for _, e := range entries {
			resp.DataFiles = append(resp.DataFiles, e.Name())
		}
	}

	c.JSON(http.StatusOK, resp)
}
