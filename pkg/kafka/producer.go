package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// ProducerOptions tunes how records are written
type ProducerOptions struct {
	// CreateTopic lets the broker create the topic on first write
	CreateTopic bool
	// NoAck does not wait for broker acknowledgment
	NoAck bool
	// Partition pins every record to one partition; nil hashes by key
	Partition *int
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string, opts ProducerOptions) *Producer {
	var balancer kafka.Balancer = &kafka.Hash{}
	if opts.Partition != nil {
		balancer = fixedPartition(*opts.Partition)
	}
	acks := kafka.RequireOne
	if opts.NoAck {
		acks = kafka.RequireNone
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               balancer,
			RequiredAcks:           acks,
			AllowAutoTopicCreation: opts.CreateTopic,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

// WriteMessages writes multiple messages to Kafka
func (p *Producer) WriteMessages(ctx context.Context, messages ...kafka.Message) error {
	return p.writer.WriteMessages(ctx, messages...)
}

// Close closes the underlying writer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

type fixedPartition int

func (p fixedPartition) Balance(_ kafka.Message, partitions ...int) int {
	for _, id := range partitions {
		if id == int(p) {
			return id
		}
	}
	return partitions[0]
}
