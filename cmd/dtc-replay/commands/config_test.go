package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	require.Equal(t, "(none)", describe(resolvedValue{}, "(none)", ""))
	require.Equal(t, "(none)  [set --brokers]", describe(resolvedValue{}, "(none)", "set --brokers"))

	v := resolvedValue{
		Value:     []string{"a:9092", "b:9092"},
		Source:    "--brokers",
		Overrides: []string{"env KAFKA_BROKERS"},
	}
	require.Equal(t, "a:9092, b:9092  [from --brokers; overrides: env KAFKA_BROKERS]", describe(v, "(none)", ""))

	require.Equal(t, "4096  [from config profile \"dev\"]",
		describe(resolvedValue{Value: 4096, Source: `config profile "dev"`}, "", ""))
}
