package util

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/config"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
	"github.com/lolocompany/dtc-replay/pkg"
)

// Quiet returns true if the global --quiet flag is set. When true, commands
// suppress progress output and informational logging.
func Quiet(cmd *cli.Command) bool {
	return cmd.Bool("quiet")
}

// Logger returns the logger configured by the root command
func Logger() zerolog.Logger {
	return log.Logger
}

// GetFormat returns the global --format flag value from the command.
// It may be empty; output.ParseFormat picks a default from TTY detection.
func GetFormat(cmd *cli.Command) string {
	return cmd.String("format")
}

// NewEncoder resolves --format and returns an encoder writing to stdout
func NewEncoder(cmd *cli.Command) (*output.Encoder, error) {
	format, err := output.ParseFormat(GetFormat(cmd), output.IsTTY(os.Stdout))
	if err != nil {
		return nil, err
	}
	return output.NewEncoder(format, os.Stdout), nil
}

// LoadConfigForCmd loads the config file using the --config path from the command.
func LoadConfigForCmd(cmd *cli.Command) (config.Config, error) {
	return config.LoadConfig(cmd.String("config"))
}

// ResolveBrokers returns the broker list for the current invocation by reading
// --config, --profile, and --brokers from the command.
func ResolveBrokers(cmd *cli.Command) ([]string, error) {
	c, err := LoadConfigForCmd(cmd)
	if err != nil {
		return nil, err
	}
	return config.ResolveBrokers(cmd.StringSlice("brokers"), cmd.String("profile"), c)
}

// ResolveServer returns the DTC server address from flag, profile or environment
func ResolveServer(cmd *cli.Command, flag string) (string, error) {
	c, err := LoadConfigForCmd(cmd)
	if err != nil {
		return "", err
	}
	return config.ResolveServer(flag, cmd.String("profile"), c)
}

// MaxMessageSize returns the largest accepted message size
func MaxMessageSize(cmd *cli.Command, flag int) (int, error) {
	c, err := LoadConfigForCmd(cmd)
	if err != nil {
		return 0, err
	}
	s, err := c.MaxMessageSize(flag, cmd.String("profile"))
	if err != nil {
		return 0, err
	}
	return s.Value, nil
}

// Interrupted reports whether err only says that the run was stopped by a
// signal or a timeout. A failed final flush is never just an interruption.
func Interrupted(err error) bool {
	if errors.Is(err, pkg.ErrFlush) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
