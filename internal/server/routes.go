package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/bitsctl/internal/report"
	"github.com/danmuck/bitsctl/internal/solver"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type decodeRequest struct {
	Hex string `json:"hex"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.NodeID(),
			"kind":    s.Kind(),
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/decode", s.handleDecode)
}

func (s *Server) handleDecode(c *gin.Context) {
	format := report.FormatJSON
	if raw := c.Query("format"); raw != "" {
		f, err := report.ParseFormat(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		format = f
	}

	input, err := s.readInput(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.solver.Solve(input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, solver.ErrInputTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if format == report.FormatJSON {
		c.JSON(http.StatusOK, res)
		return
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, format, res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// readInput accepts {"hex": "..."} JSON or the bare hex text as the body.
func (s *Server) readInput(c *gin.Context) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBody))
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req decodeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return "", err
		}
		return req.Hex, nil
	}
	return string(body), nil
}
