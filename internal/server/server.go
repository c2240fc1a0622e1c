// Package server exposes the PDF generation service over HTTP.
//
// A single POST endpoint accepts either a structured report record or
// pre-rendered HTML, converts it, and streams the resulting PDF back as
// a file attachment. Health and index endpoints cover monitoring and
// discovery.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mss-eng/reportpdf"
)

// Generator produces PDF documents from report records or raw HTML.
// *reportpdf.Service satisfies it; tests substitute lightweight fakes.
type Generator interface {
	GenerateReport(ctx context.Context, rec reportpdf.ReportRecord) (*reportpdf.Document, error)
	GenerateHTML(ctx context.Context, htmlContent, filename string) (*reportpdf.Document, error)
	Release(doc *reportpdf.Document)
}

var _ Generator = (*reportpdf.Service)(nil)

// Server routes HTTP requests to a Generator.
type Server struct {
	engine  *gin.Engine
	svc     Generator
	version string
}

// New builds the HTTP surface around svc. allowOrigins configures CORS;
// an empty list allows any origin.
func New(svc Generator, allowOrigins []string, version string) *Server {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	engine.Use(RequestID())

	s := &Server{engine: engine, svc: svc, version: version}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.POST("/generate-pdf", s.generatePDF)
	s.engine.GET("/health", s.health)
	s.engine.GET("/", s.index)
}

// Handler returns the router for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}
