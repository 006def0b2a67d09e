// Package http exposes the analysis result over a small read-only API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"inflammation/analysis"
	"inflammation/defs"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 10 * time.Second

type HTTPServer struct {
	Analyzer *analysis.Analyzer
}

func New(an *analysis.Analyzer) *HTTPServer {
	return &HTTPServer{Analyzer: an}
}

// Router builds the gin router; Serve runs it. Split so tests can drive the
// handlers without binding a port.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/variability", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		days, err := s.Analyzer.Analyze(ctx)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, defs.ErrShape) || errors.Is(err, defs.ErrFormat) {
				status = http.StatusUnprocessableEntity
			}
			c.String(status, "unable to analyze datasets: %v", err)
			return
		}

		c.JSON(http.StatusOK, days)
	})

	return r
}

func (s *HTTPServer) Serve(addr string) error {
	return s.Router().Run(addr)
}
