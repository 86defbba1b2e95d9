package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Consumer reads DTC messages from a topic, either from one partition over a
// low-level kafka.Conn or through a consumer group.
//
// The partition mode keeps direct connection access to:
//   - Seek to specific offsets (SetOffset)
//   - Read batches directly from a partition (ReadBatch)
//
// The group mode uses kafka.Reader, which owns partition assignment and
// commits offsets itself.
type Consumer struct {
	conn   *kafka.Conn
	batch  *kafka.Batch
	reader *kafka.Reader
	mu     sync.Mutex
}

// ErrGroupOffset is returned when an offset is set on a consumer group
var ErrGroupOffset = errors.New("offsets are managed by the consumer group")

// SetOffset sets the offset to a specific value
func (c *Consumer) SetOffset(offset int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reader != nil {
		return ErrGroupOffset
	}
	_, err := c.conn.Seek(offset, kafka.SeekStart)
	return err
}

func (c *Consumer) Close() error {
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			return fmt.Errorf("failed to close consumer: %w", err)
		}
		return nil
	}
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close consumer: %w", err)
	}
	return nil
}

// ReadNextMessage reads the next complete message from Kafka.
// In partition mode io.EOF marks the end of a batch; the next call reads a new one.
func (c *Consumer) ReadNextMessage(ctx context.Context) (Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reader != nil {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return Message{}, err
		}
		return fromKafka(m)
	}

	// If we don't have a batch or it's exhausted, read a new one
	if c.batch == nil {
		batchChan := make(chan *kafka.Batch, 1)
		errChan := make(chan error, 1)

		go func() {
			batch := c.conn.ReadBatch(1, 10*1024*1024) // minBytes=1, maxBytes=10MB
			select {
			case <-ctx.Done():
				batch.Close()
				errChan <- ctx.Err()
			case batchChan <- batch:
			}
		}()

		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case err := <-errChan:
			return Message{}, err
		case b := <-batchChan:
			c.batch = b
		}
	}

	msg, err := c.batch.ReadMessage()
	if err != nil {
		if err == io.EOF {
			c.batch.Close()
			c.batch = nil
		}
		return Message{}, err
	}

	return fromKafka(msg)
}

// NewConsumer creates a consumer for topic. An empty groupID reads partition
// directly; otherwise the consumer joins the group and partition is ignored.
func NewConsumer(ctx context.Context, brokers []string, topic string, partition int, groupID string) (*Consumer, error) {
	if groupID == "" {
		return NewPartitionConsumer(ctx, brokers, topic, partition)
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10 * 1024 * 1024,
		}),
	}, nil
}

// NewPartitionConsumer connects to the leader of one partition
func NewPartitionConsumer(ctx context.Context, brokers []string, topic string, partition int) (*Consumer, error) {
	// DialLeader expects a single broker address - it will discover the leader from metadata
	// Try each broker until one works
	var conn *kafka.Conn
	err := fmt.Errorf("at least one broker address is required")
	for _, broker := range brokers {
		conn, err = kafka.DialLeader(ctx, "tcp", broker, topic, partition)
		if err == nil {
			break
		}
	}
	if err != nil {
		// Kafka returns the leader's advertised address in metadata, so the
		// error may name a broker other than the ones provided.
		return nil, fmt.Errorf("%w (tried: %v). Note: Kafka may return a different broker address (leader) in metadata that must also be reachable: %v", ErrConnect, brokers, err)
	}

	return &Consumer{
		conn: conn,
	}, nil
}
