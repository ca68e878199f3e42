package handlers

import (
	"fmt"
	"net/http"

	"resumewright"
	"resumewright/internal/pkg/logger"
	"resumewright/internal/pkg/pool"
	"resumewright/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ConvertHandler handles the library's four entry points over HTTP, per
// §5's rule that the core itself runs no background scheduler: every
// request runs exactly one synchronous conversion, bounded only by the
// worker pool's concurrency limit.
type ConvertHandler struct {
	logger    logger.Logger
	pool      *pool.WorkerPool
	validator *validation.ContentValidator
}

// NewConvertHandler creates a new convert handler bounded by the given
// worker pool.
func NewConvertHandler(logger logger.Logger, workerPool *pool.WorkerPool) *ConvertHandler {
	return &ConvertHandler{
		logger:    logger.With("handler", "convert"),
		pool:      workerPool,
		validator: validation.NewContentValidator(),
	}
}

// ConvertRequest is the JSON body of POST /api/v1/convert.
type ConvertRequest struct {
	TSX    string              `json:"tsx" binding:"required"`
	Config resumewright.Config `json:"config"`
	Fonts  resumewright.FontCollection `json:"fonts"`
}

type convertOutcome struct {
	pdf []byte
	err error
}

// Convert runs the full TSX-to-PDF pipeline and streams back the PDF bytes.
func (ch *ConvertHandler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := ch.validator.ValidateContent(req.TSX, "tsx"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Config == (resumewright.Config{}) {
		req.Config = resumewright.DefaultConfig()
	}

	done := make(chan convertOutcome, 1)
	job := func() {
		out, err := resumewright.ConvertTSXToPDF(c.Request.Context(), req.TSX, req.Config, req.Fonts, nil)
		done <- convertOutcome{pdf: out, err: err}
	}
	if err := ch.pool.Submit(job); err != nil {
		ch.logger.Warn("conversion rejected, pool at capacity", "error", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "conversion queue is full, try again later"})
		return
	}

	select {
	case res := <-done:
		if res.err != nil {
			ch.logger.Error("conversion failed", "error", res.err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.err.Error()})
			return
		}
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Length", fmt.Sprintf("%d", len(res.pdf)))
		c.Data(http.StatusOK, "application/pdf", res.pdf)
	case <-c.Request.Context().Done():
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	}
}

// MetadataRequest is the JSON body shared by /metadata, /fonts, /ats.
type MetadataRequest struct {
	TSX    string              `json:"tsx" binding:"required"`
	Config resumewright.Config `json:"config"`
}

// Metadata runs ExtractCVMetadata and returns the resulting CVMetadata as JSON.
func (ch *ConvertHandler) Metadata(c *gin.Context) {
	var req MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	md, err := resumewright.ExtractCVMetadata(req.TSX)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, md)
}

// Fonts runs DetectFonts and returns the distinct font variants used.
func (ch *ConvertHandler) Fonts(c *gin.Context) {
	var req MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	reqs, err := resumewright.DetectFonts(req.TSX)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fonts": reqs})
}

// ATS runs ValidateATSCompatibility and returns the resulting report.
func (ch *ConvertHandler) ATS(c *gin.Context) {
	var req MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	cfg := req.Config
	if cfg == (resumewright.Config{}) {
		cfg = resumewright.DefaultConfig()
	}
	report, err := resumewright.ValidateATSCompatibility(req.TSX, cfg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
