package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/config"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/kafka"
)

// resolvedValue is one configuration value with its origin
type resolvedValue struct {
	Value     any      `json:"value" cbor:"value"`
	Source    string   `json:"source,omitempty" cbor:"source,omitempty"`
	Overrides []string `json:"overrides,omitempty" cbor:"overrides,omitempty"`
}

type resolvedConfig struct {
	ConfigFile     string         `json:"config_file" cbor:"config_file"`
	ConfigExists   bool           `json:"config_exists" cbor:"config_exists"`
	Profile        resolvedValue  `json:"profile" cbor:"profile"`
	Brokers        resolvedValue  `json:"brokers" cbor:"brokers"`
	Server         resolvedValue  `json:"server" cbor:"server"`
	MaxMessageSize resolvedValue  `json:"max_message_size" cbor:"max_message_size"`
	Cluster        []kafka.Broker `json:"cluster,omitempty" cbor:"cluster,omitempty"`
}

func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:        "config",
		Aliases:     []string{"cfg", "conf"},
		Usage:       "Show resolved configuration and where each value comes from",
		Description: "Resolves and displays the config currently in use: config file path, profile, brokers, DTC server and message size limit. Shows the source of each value and which lower-priority sources it overrides.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Connect to the resolved brokers and list the cluster",
			},
		},
		Action: runConfig,
	}
}

func runConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		resolved, err := config.ResolveConfigPath()
		if err != nil {
			return err
		}
		path = resolved
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	out := resolvedConfig{ConfigFile: path}
	if _, err := os.Stat(path); err == nil {
		out.ConfigExists = true
	}

	profileFlag := cmd.String("profile")
	profile, err := cfg.ProfileName(profileFlag)
	if err != nil {
		return err
	}
	out.Profile = resolvedValue{Value: profile.Value, Source: profile.Source}

	brokers, err := cfg.Brokers(cmd.StringSlice("brokers"), profileFlag)
	if err != nil {
		return err
	}
	out.Brokers = resolvedValue{Value: brokers.Value, Source: brokers.Source, Overrides: brokers.Overrides}

	server, err := cfg.Server("", profileFlag)
	if err != nil {
		return err
	}
	out.Server = resolvedValue{Value: server.Value, Source: server.Source, Overrides: server.Overrides}

	maxSize, err := cfg.MaxMessageSize(0, profileFlag)
	if err != nil {
		return err
	}
	out.MaxMessageSize = resolvedValue{Value: maxSize.Value, Source: maxSize.Source}

	if cmd.Bool("check") {
		if len(brokers.Value) == 0 {
			return config.ErrNoBrokers
		}
		cluster, err := pkg.ListBrokers(ctx, brokers.Value)
		if err != nil {
			return err
		}
		out.Cluster = cluster
	}

	enc, err := util.NewEncoder(cmd)
	if err != nil {
		return err
	}
	switch enc.Format() {
	case output.FormatTable:
		return writeConfigTable(enc, out)
	case output.FormatRaw:
		return errRawUnsupported("config")
	default:
		return enc.Encode(out)
	}
}

func writeConfigTable(enc *output.Encoder, c resolvedConfig) error {
	w := os.Stdout
	state := "file not found; using empty config"
	if c.ConfigExists {
		state = "file exists"
	}
	fmt.Fprintf(w, "config file:      %s  [%s]\n", c.ConfigFile, state)
	fmt.Fprintf(w, "profile:          %s\n", describe(c.Profile, "(none)", ""))
	fmt.Fprintf(w, "brokers:          %s\n", describe(c.Brokers, "(none)", "set --brokers, a profile with brokers, or "+config.EnvBrokers))
	fmt.Fprintf(w, "server:           %s\n", describe(c.Server, "(none)", "set --server, a profile with dtc_server, or "+config.EnvServer))
	fmt.Fprintf(w, "max message size: %s\n", describe(c.MaxMessageSize, "protocol maximum", ""))

	if c.Cluster == nil {
		return nil
	}
	fmt.Fprintln(w)
	rows := make([][]string, 0, len(c.Cluster))
	for _, b := range c.Cluster {
		rows = append(rows, []string{strconv.Itoa(b.ID), b.Address, strconv.FormatBool(b.Reachable)})
	}
	return enc.EncodeTable([]string{"ID", "ADDRESS", "REACHABLE"}, rows)
}

func describe(v resolvedValue, unset, hint string) string {
	if v.Source == "" {
		if hint != "" {
			return unset + "  [" + hint + "]"
		}
		return unset
	}
	value := fmt.Sprint(v.Value)
	if list, ok := v.Value.([]string); ok {
		value = strings.Join(list, ", ")
	}
	s := value + "  [from " + v.Source
	if len(v.Overrides) > 0 {
		s += "; overrides: " + strings.Join(v.Overrides, ", ")
	}
	return s + "]"
}
