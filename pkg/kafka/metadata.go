// Package kafka carries DTC messages over Kafka topics.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// ErrConnect is returned when no broker could be reached
var ErrConnect = errors.New("failed to connect to any broker")

// Conn represents a connection to a Kafka broker
type Conn struct {
	conn *kafkago.Conn
}

// Broker represents a Kafka broker
type Broker struct {
	ID        int    `json:"id" cbor:"id"`
	Address   string `json:"address" cbor:"address"`
	Reachable bool   `json:"reachable" cbor:"reachable"`
}

// ConnectToAnyBroker connects to the first available broker from the given list
func ConnectToAnyBroker(ctx context.Context, brokers []string) (*Conn, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}

	var conn *kafkago.Conn
	var err error
	for _, broker := range brokers {
		conn, err = kafkago.DialContext(ctx, "tcp", broker)
		if err == nil {
			return &Conn{conn: conn}, nil
		}
	}
	return nil, fmt.Errorf("%w (tried: %v): %v", ErrConnect, brokers, err)
}

// Close closes the connection
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Brokers lists the brokers of the cluster sorted by ID, with reachability
func (c *Conn) Brokers(ctx context.Context) ([]Broker, error) {
	brokers, err := c.conn.Brokers()
	if err != nil {
		return nil, fmt.Errorf("failed to get broker list: %w", err)
	}

	result := make([]Broker, 0, len(brokers))
	for _, b := range brokers {
		addr := fmt.Sprintf("%s:%d", b.Host, b.Port)
		result = append(result, Broker{
			ID:        b.ID,
			Address:   addr,
			Reachable: IsBrokerReachable(ctx, addr),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// IsBrokerReachable checks if a broker is reachable by attempting to connect to it
func IsBrokerReachable(ctx context.Context, address string) bool {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	conn, err := kafkago.DialContext(checkCtx, "tcp", address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
