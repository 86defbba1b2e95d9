package pkg

import (
	"context"
	"fmt"
	"net"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/lolocompany/dtc-replay/pkg/kafka"
	"github.com/lolocompany/dtc-replay/pkg/metrics"
	"github.com/lolocompany/dtc-replay/pkg/stream"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// Sink receives replayed messages in batches
type Sink interface {
	Send(ctx context.Context, batch []transcoder.Entry) error
	Close() error
}

// KafkaSink publishes each message as one Kafka record keyed by message type
type KafkaSink struct {
	producer *kafka.Producer
	buf      []kafkago.Message
}

func NewKafkaSink(producer *kafka.Producer) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Send(ctx context.Context, batch []transcoder.Entry) error {
	s.buf = s.buf[:0]
	for _, e := range batch {
		m, err := kafka.NewMessage(e.Direction, e.Message, e.Timestamp)
		if err != nil {
			return err
		}
		s.buf = append(s.buf, m)
	}

	start := time.Now()
	if err := s.producer.WriteMessages(ctx, s.buf...); err != nil {
		return fmt.Errorf("failed to write batch to Kafka: %w", err)
	}
	metrics.RecordSend("kafka", time.Since(start))
	return nil
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}

// StreamSink writes messages back onto a DTC connection, unchanged
type StreamSink struct {
	conn   net.Conn
	writer *stream.Writer
}

// NewStreamSink takes ownership of conn
func NewStreamSink(conn net.Conn) *StreamSink {
	return &StreamSink{conn: conn, writer: stream.NewWriter(conn)}
}

func (s *StreamSink) Send(ctx context.Context, batch []transcoder.Entry) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.SetWriteDeadline(time.Now())
	})
	defer stop()

	start := time.Now()
	for _, e := range batch {
		if err := s.writer.Write(e.Message); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
	}
	metrics.RecordSend("stream", time.Since(start))
	return nil
}

func (s *StreamSink) Close() error {
	return s.conn.Close()
}
