package api

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// setupDashboardRoutes serves the dashboard SPA build from dashboardDir.
// No-op when no directory is configured or it has no index.html; the API
// then runs headless. Registered API routes always take priority over the
// SPA fallback.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	indexPath := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		slog.Warn("Dashboard directory has no index.html, skipping dashboard routes",
			"dir", s.dashboardDir)
		return
	}

	s.echo.GET("/*", s.dashboardHandler)
	slog.Info("Dashboard routes enabled", "dir", s.dashboardDir)
}

// dashboardHandler serves static dashboard files, falling back to index.html
// for client-side routes. Hashed build assets under /assets/ get immutable
// cache headers; everything else is no-cache so browsers pick up new asset
// hashes after deployments.
func (s *Server) dashboardHandler(c *echo.Context) error {
	reqPath := c.Request().URL.Path

	// Never shadow the API surface with index.html.
	if strings.HasPrefix(reqPath, "/api/") || reqPath == "/health" || reqPath == "/ws" {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	clean := path.Clean("/" + reqPath)
	fsPath := filepath.Join(s.dashboardDir, filepath.FromSlash(clean))

	if info, err := os.Stat(fsPath); err == nil && !info.IsDir() {
		if strings.HasPrefix(clean, "/assets/") {
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		return c.File(fsPath)
	}

	// SPA fallback for client-side routes.
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.File(filepath.Join(s.dashboardDir, "index.html"))
}
