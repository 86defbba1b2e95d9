package pkg

import (
	"context"

	"github.com/lolocompany/dtc-replay/pkg/kafka"
)

// ListBrokers lists all brokers of the cluster with their reachability status
func ListBrokers(ctx context.Context, brokers []string) ([]kafka.Broker, error) {
	conn, err := kafka.ConnectToAnyBroker(ctx, brokers)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.Brokers(ctx)
}
