package handlers

import (
	"net/http"
	"runtime"
	"time"

	"resumewright/internal/api/middleware"
	"resumewright/internal/pkg/logger"
	"resumewright/internal/pkg/pool"

	"github.com/gin-gonic/gin"
)

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	logger    logger.Logger
	pool      *pool.WorkerPool
	perf      *middleware.PerformanceMonitor
	startTime time.Time
}

// NewMetricsHandler creates a new metrics handler bounded to the given
// worker pool and performance monitor, whose stats it reports alongside
// the process's own.
func NewMetricsHandler(logger logger.Logger, workerPool *pool.WorkerPool, perf *middleware.PerformanceMonitor) *MetricsHandler {
	return &MetricsHandler{
		logger:    logger.With("handler", "metrics"),
		pool:      workerPool,
		perf:      perf,
		startTime: time.Now(),
	}
}

// Metrics returns process and conversion-pool metrics.
func (mh *MetricsHandler) Metrics(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(mh.startTime)
	stats := mh.pool.GetStats()

	metrics := gin.H{
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": m.Alloc,
			"memory_total": m.TotalAlloc,
			"memory_sys":   m.Sys,
			"gc_cycles":    m.NumGC,
			"cpu_count":    runtime.NumCPU(),
		},
		"service": gin.H{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.String(),
		},
		"conversion_pool": gin.H{
			"worker_count": stats.WorkerCount,
			"active_jobs":  stats.ActiveJobs,
			"queued_jobs":  stats.QueuedJobs,
		},
		"requests": mh.perf.GetMetrics(),
	}

	c.JSON(http.StatusOK, metrics)
}
