package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type LogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	IP         string    `json:"ip"`
	StatusCode int       `json:"status_code"`
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Duration   float64   `json:"duration"`
	Service    string    `json:"service"`
}

// MessageWriter is the part of *kafka.Writer the access log needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter returns an async writer for topic, or nil when addr is empty.
func NewKafkaWriter(addr, topic string) *kafka.Writer {
	if addr == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:     kafka.TCP(addr),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Async:    true,
	}
}

// LoggingMiddleware logs one line per request and, when kw is not nil, ships
// the same entry as JSON.
func LoggingMiddleware(service string, kw MessageWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := LogEntry{
			Timestamp:  time.Now(),
			IP:         c.ClientIP(),
			StatusCode: c.Writer.Status(),
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Duration:   time.Since(start).Seconds(),
			Service:    service,
		}

		log.WithFields(log.Fields{
			"request_id": entry.RequestID,
			"status":     entry.StatusCode,
			"duration":   entry.Duration,
			"ip":         entry.IP,
		}).Infof("[http] %s %s", entry.Method, entry.Path)

		if kw == nil {
			return
		}

		jsonEntry, err := json.Marshal(entry)
		if err != nil {
			log.Errorf("[http] failed to marshal log entry for request %s", entry.RequestID)
			return
		}
		if err := kw.WriteMessages(c.Request.Context(), kafka.Message{Key: []byte(entry.RequestID), Value: jsonEntry}); err != nil {
			log.Errorf("[http] failed to write log to Kafka: %v", err)
			return
		}
		log.Debugf("[http] log entry sent to Kafka request_id:%s", entry.RequestID)
	}
}
