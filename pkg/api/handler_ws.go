package api

import (
	"net/url"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	opts := &websocket.AcceptOptions{}
	if patterns := s.allowedOriginPatterns(); len(patterns) > 0 {
		opts.OriginPatterns = patterns
	} else {
		// No origin allowlist configured: accept all origins.
		opts.InsecureSkipVerify = true
	}

	// Upgrade HTTP to WebSocket
	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	// Register connection with the ConnectionManager.
	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}

// allowedOriginPatterns builds the WebSocket origin allowlist from the
// configured patterns plus the dashboard URL's host.
func (s *Server) allowedOriginPatterns() []string {
	if s.cfg == nil || s.cfg.System == nil {
		return nil
	}
	patterns := append([]string(nil), s.cfg.System.AllowedWSOrigins...)
	if s.cfg.System.DashboardURL != "" {
		if u, err := url.Parse(s.cfg.System.DashboardURL); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}
