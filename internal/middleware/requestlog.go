package middleware

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"brightline/internal/models"
	"brightline/internal/repository"
)

const (
	logBatchSize     = 100
	logFlushInterval = 5 * time.Second
)

// RequestLogWorker captures one request_logs row per request and batch
// inserts them off the request path. A full buffer drops entries rather
// than blocking a response on the database.
type RequestLogWorker struct {
	repo *repository.RequestLogRepository
	ch   chan models.RequestLog
}

func NewRequestLogWorker(repo *repository.RequestLogRepository, bufferSize int) *RequestLogWorker {
	return &RequestLogWorker{
		repo: repo,
		ch:   make(chan models.RequestLog, bufferSize),
	}
}

// Start runs the batch-insert loop until ctx is cancelled, then flushes
// whatever is buffered.
func (w *RequestLogWorker) Start(ctx context.Context) {
	go func() {
		batch := make([]models.RequestLog, 0, logBatchSize)
		ticker := time.NewTicker(logFlushInterval)
		defer ticker.Stop()

		flush := func() {
			if len(batch) == 0 {
				return
			}
			if err := w.repo.CreateBatch(context.Background(), batch); err != nil {
				log.Printf("failed to insert request logs: %v", err)
			}
			batch = make([]models.RequestLog, 0, logBatchSize)
		}

		for {
			select {
			case entry := <-w.ch:
				batch = append(batch, entry)
				if len(batch) >= logBatchSize {
					flush()
				}
			case <-ticker.C:
				flush()
			case <-ctx.Done():
				// Drain anything already queued before exiting.
				for {
					select {
					case entry := <-w.ch:
						batch = append(batch, entry)
					default:
						flush()
						return
					}
				}
			}
		}
	}()
}

// Middleware records each completed request.
func (w *RequestLogWorker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := models.RequestLog{
			Timestamp:      start,
			RequestID:      c.GetString("request_id"),
			Method:         c.Request.Method,
			Path:           c.Request.URL.Path,
			StatusCode:     c.Writer.Status(),
			ResponseTimeMs: int(time.Since(start).Milliseconds()),
			IPAddress:      c.ClientIP(),
			UserAgent:      c.Request.UserAgent(),
		}

		select {
		case w.ch <- entry:
		default:
			// Channel full, skip the entry to avoid blocking the response.
		}
	}
}
