package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// accessLogTimeout bounds a single delivery to the broker.
const accessLogTimeout = 5 * time.Second

// MessageWriter is the part of *kafka.Writer the access log needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// LogEntry is one access log record.
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

// AccessLog publishes a LogEntry for every request to writer. Delivery runs
// in the background so a slow broker never delays the response.
func AccessLog(writer MessageWriter, service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lw := NewResponseLogger(w)
			next.ServeHTTP(lw, r)

			entry := LogEntry{
				Timestamp:  time.Now(),
				IP:         clientIP(r),
				StatusCode: lw.Status(),
				RequestID:  GetRequestID(r.Context()),
				Method:     r.Method,
				Path:       r.URL.Path,
				Duration:   time.Since(start).Seconds(),
				Service:    service,
			}

			value, err := json.Marshal(entry)
			if err != nil {
				log.Errorf("[AccessLog] failed to marshal log entry for request %s", entry.RequestID)
				return
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), accessLogTimeout)
				defer cancel()
				msg := kafka.Message{Key: []byte(entry.RequestID), Value: value}
				if err := writer.WriteMessages(ctx, msg); err != nil {
					log.Errorf("[AccessLog] failed to write log to Kafka: %v", err)
					return
				}
				log.Debugf("[AccessLog] log entry sent to Kafka request_id:%s", entry.RequestID)
			}()
		})
	}
}

func clientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}
