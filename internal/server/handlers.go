package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mss-eng/reportpdf"
	"github.com/mss-eng/reportpdf/internal/logger"
)

// legacyRequest is the passthrough-mode body: pre-rendered HTML plus an
// optional download name.
type legacyRequest struct {
	HTML     string `json:"html"`
	Filename string `json:"filename"`
}

// generatePDF handles POST /generate-pdf. Both request shapes share one
// endpoint: a body carrying an "html" key holds pre-rendered HTML,
// anything else decodes as a structured report record. Key presence
// decides, so {"html": ""} still selects passthrough mode and fails
// with the usual empty-content error.
func (s *Server) generatePDF(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, ok := fields["html"]; ok {
		s.generateLegacy(c, body)
		return
	}
	s.generateReport(c, body)
}

func (s *Server) generateReport(c *gin.Context, body []byte) {
	var rec reportpdf.ReportRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	logger.Info("generating report pdf",
		"request_id", c.GetString("request_id"),
		"report_number", rec.ReportNumber,
		"images", len(rec.Images))

	// The request context is deliberately not forwarded: a client
	// disconnect must not kill the browser mid-render.
	doc, err := s.svc.GenerateReport(context.Background(), rec)
	if err != nil {
		s.generateError(c, err)
		return
	}
	s.sendDocument(c, doc)
}

func (s *Server) generateLegacy(c *gin.Context, body []byte) {
	var req legacyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	logger.Info("generating pdf from html",
		"request_id", c.GetString("request_id"),
		"html_bytes", len(req.HTML))

	doc, err := s.svc.GenerateHTML(context.Background(), req.HTML, req.Filename)
	if err != nil {
		s.generateError(c, err)
		return
	}
	s.sendDocument(c, doc)
}

// sendDocument streams the PDF as an attachment and schedules spool
// cleanup once the response has been written.
func (s *Server) sendDocument(c *gin.Context, doc *reportpdf.Document) {
	defer s.svc.Release(doc)

	logger.Info("pdf generated",
		"request_id", c.GetString("request_id"),
		"filename", doc.Filename,
		"bytes", doc.Size)
	c.FileAttachment(doc.Path, doc.Filename)
}

func (s *Server) generateError(c *gin.Context, err error) {
	if errors.Is(err, reportpdf.ErrNoHTMLContent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error("pdf generation failed",
		"request_id", c.GetString("request_id"),
		"error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// health handles GET /health for load balancers and uptime checks.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "PDF generation service is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   s.version,
	})
}

// index handles GET / with a short service description.
func (s *Server) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "MSS PDF Generation API",
		"version": s.version,
		"endpoints": gin.H{
			"POST /generate-pdf": "Generate PDF from HTML",
			"GET /health":        "Health check",
		},
	})
}
