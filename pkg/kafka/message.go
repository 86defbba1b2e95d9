package kafka

import (
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

// DirectionHeader is the Kafka record header carrying which side sent a message.
const DirectionHeader = "dtc-direction"

// Message is a DTC message carried in a Kafka record
type Message struct {
	Time      time.Time
	Direction dtc.Direction
	// Value is the raw DTC message, header included
	Value  []byte
	Offset int64
}

// NewMessage wraps a raw DTC message in a Kafka record. The record key is the
// message type name so that all messages of one type land on one partition.
func NewMessage(dir dtc.Direction, value []byte, timestamp time.Time) (kafka.Message, error) {
	h, err := dtc.ParseHeader(value)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(h.Type.String()),
		Value: value,
		Time:  timestamp,
		Headers: []kafka.Header{
			{Key: DirectionHeader, Value: []byte(dir.String())},
		},
	}, nil
}

// fromKafka converts a consumed record. Records without a direction header
// are taken to come from the server.
func fromKafka(m kafka.Message) (Message, error) {
	dir := dtc.FromServer
	for _, h := range m.Headers {
		if h.Key != DirectionHeader {
			continue
		}
		parsed, err := dtc.ParseDirection(string(h.Value))
		if err != nil {
			return Message{}, fmt.Errorf("offset %d: %w", m.Offset, err)
		}
		dir = parsed
	}

	// Return a copy of the message value
	value := make([]byte, len(m.Value))
	copy(value, m.Value)

	return Message{
		Time:      m.Time,
		Direction: dir,
		Value:     value,
		Offset:    m.Offset,
	}, nil
}
