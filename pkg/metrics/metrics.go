// Package metrics exposes per-message-type counters for the record, replay
// and cat pipelines.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// Operations used as the op label.
const (
	OpRecord = "record"
	OpReplay = "replay"
	OpCat    = "cat"
)

var (
	registerOnce sync.Once

	messages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dtc_replay",
			Name:      "messages_total",
			Help:      "DTC messages handled, by operation, direction and message type.",
		},
		[]string{"op", "direction", "type"},
	)
	messageBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dtc_replay",
			Name:      "message_bytes_total",
			Help:      "Bytes of DTC messages handled, headers included.",
		},
		[]string{"op", "direction"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dtc_replay",
			Name:      "decode_errors_total",
			Help:      "Messages that failed to decode, by reason.",
		},
		[]string{"op", "reason"},
	)
	sendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dtc_replay",
			Name:      "send_duration_seconds",
			Help:      "Time spent handing a batch of messages to a sink.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sink"},
	)
)

// RegisterMetrics registers the collectors with the default registry. It is
// safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messages, messageBytes, decodeErrors, sendDuration)
	})
}

// RecordMessage counts one message of type t.
func RecordMessage(op string, dir dtc.Direction, t dtc.MessageType, size int) {
	RegisterMetrics()
	direction := dir.String()
	messages.WithLabelValues(op, direction, typeLabel(t)).Inc()
	messageBytes.WithLabelValues(op, direction).Add(float64(size))
}

// RecordDecodeError counts a failed decode under the reason derived from err.
func RecordDecodeError(op string, err error) {
	RegisterMetrics()
	decodeErrors.WithLabelValues(op, Reason(err)).Inc()
}

// RecordSend observes how long a sink took to accept a batch.
func RecordSend(sink string, duration time.Duration) {
	RegisterMetrics()
	sendDuration.WithLabelValues(sink).Observe(duration.Seconds())
}

// Reason maps a codec error to a short label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, dtc.ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, dtc.ErrMalformedLength):
		return "malformed_length"
	case errors.Is(err, dtc.ErrTruncated):
		return "truncated"
	case errors.Is(err, dtc.ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "other"
	}
}

// Known types are labelled by name. Unknown tags share one label so a
// misbehaving peer cannot grow the series count.
func typeLabel(t dtc.MessageType) string {
	if dtc.Known(t) {
		return t.String()
	}
	return "unknown"
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	RegisterMetrics()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	return nil
}
