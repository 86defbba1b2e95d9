// Package config loads named connection profiles from a YAML file and
// resolves settings from flags, the selected profile and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	// EnvBrokers is read when neither a flag nor the profile names brokers
	EnvBrokers = "KAFKA_BROKERS"
	// EnvServer is read when neither a flag nor the profile names a DTC server
	EnvServer = "DTC_SERVER"
	// LocalConfigFile overrides the default path when present in the working directory
	LocalConfigFile = "dtc-replay.yaml"
)

var (
	// ErrNoBrokers is returned when no source provides broker addresses
	ErrNoBrokers = errors.New("no brokers configured: set --brokers, a profile with brokers, or " + EnvBrokers)
	// ErrNoServer is returned when no source provides a DTC server address
	ErrNoServer = errors.New("no DTC server configured: set --server, a profile with dtc_server, or " + EnvServer)
)

// Profile is one named set of connection settings
type Profile struct {
	Brokers        []string `yaml:"brokers,omitempty"`
	DTCServer      string   `yaml:"dtc_server,omitempty"`
	MaxMessageSize int      `yaml:"max_message_size,omitempty"`
}

// Config is the content of the config file
type Config struct {
	DefaultProfile string             `yaml:"default_profile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles,omitempty"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/dtc-replay/config.yaml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dtc-replay", "config.yaml")
}

// ResolveConfigPath returns ./dtc-replay.yaml if it exists, otherwise the default path
func ResolveConfigPath() (string, error) {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		abs, err := filepath.Abs(LocalConfigFile)
		if err != nil {
			return "", err
		}
		return abs, nil
	}
	p := DefaultConfigPath()
	if p == "" {
		return "", errors.New("could not determine the home directory")
	}
	return p, nil
}

// LoadConfig reads the config file at path, or at the resolved path when
// path is empty. A missing file, or no default location to look in, yields an
// empty config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		resolved, err := ResolveConfigPath()
		if err != nil {
			log.Debug().Err(err).Msg("no config file location, using an empty config")
			return Config{}, nil
		}
		path = resolved
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			return Config{}, fmt.Errorf("config file %s: default_profile %q is not defined", path, c.DefaultProfile)
		}
	}
	for name, p := range c.Profiles {
		if p.MaxMessageSize < 0 || p.MaxMessageSize > 65535 {
			return Config{}, fmt.Errorf("config file %s: profile %q: max_message_size %d out of range", path, name, p.MaxMessageSize)
		}
	}
	return c, nil
}

// Setting is a resolved value and where it came from
type Setting[T any] struct {
	Value  T
	Source string
	// Overrides lists lower-priority sources that also set a value
	Overrides []string
}

// ProfileName selects the profile: --profile, then default_profile
func (c Config) ProfileName(flag string) (Setting[string], error) {
	if flag != "" {
		if _, ok := c.Profiles[flag]; !ok {
			return Setting[string]{}, fmt.Errorf("profile %q not found in config", flag)
		}
		return Setting[string]{Value: flag, Source: "--profile"}, nil
	}
	if c.DefaultProfile != "" {
		return Setting[string]{Value: c.DefaultProfile, Source: "config default_profile"}, nil
	}
	return Setting[string]{}, nil
}

// Brokers resolves the broker list: --brokers, then the profile, then KAFKA_BROKERS
func (c Config) Brokers(flag []string, profile string) (Setting[[]string], error) {
	name, err := c.ProfileName(profile)
	if err != nil {
		return Setting[[]string]{}, err
	}
	p := c.Profiles[name.Value]
	env := splitList(os.Getenv(EnvBrokers))

	return resolve([]candidate[[]string]{
		{"--brokers", flag, len(flag) > 0},
		{profileSource(name.Value), p.Brokers, len(p.Brokers) > 0},
		{"env " + EnvBrokers, env, len(env) > 0},
	}), nil
}

// Server resolves the DTC server address: --server, then the profile, then DTC_SERVER
func (c Config) Server(flag, profile string) (Setting[string], error) {
	name, err := c.ProfileName(profile)
	if err != nil {
		return Setting[string]{}, err
	}
	p := c.Profiles[name.Value]
	env := strings.TrimSpace(os.Getenv(EnvServer))

	return resolve([]candidate[string]{
		{"--server", flag, flag != ""},
		{profileSource(name.Value), p.DTCServer, p.DTCServer != ""},
		{"env " + EnvServer, env, env != ""},
	}), nil
}

// MaxMessageSize resolves the largest accepted message: --max-message-size,
// then the profile. Zero means the protocol maximum.
func (c Config) MaxMessageSize(flag int, profile string) (Setting[int], error) {
	name, err := c.ProfileName(profile)
	if err != nil {
		return Setting[int]{}, err
	}
	p := c.Profiles[name.Value]

	return resolve([]candidate[int]{
		{"--max-message-size", flag, flag > 0},
		{profileSource(name.Value), p.MaxMessageSize, p.MaxMessageSize > 0},
	}), nil
}

// ResolveBrokers returns the broker list or ErrNoBrokers
func ResolveBrokers(flag []string, profile string, c Config) ([]string, error) {
	s, err := c.Brokers(flag, profile)
	if err != nil {
		return nil, err
	}
	if len(s.Value) == 0 {
		return nil, ErrNoBrokers
	}
	return s.Value, nil
}

// ResolveServer returns the DTC server address or ErrNoServer
func ResolveServer(flag, profile string, c Config) (string, error) {
	s, err := c.Server(flag, profile)
	if err != nil {
		return "", err
	}
	if s.Value == "" {
		return "", ErrNoServer
	}
	return s.Value, nil
}

type candidate[T any] struct {
	source string
	value  T
	set    bool
}

func resolve[T any](candidates []candidate[T]) Setting[T] {
	var s Setting[T]
	found := false
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if found {
			s.Overrides = append(s.Overrides, c.source)
			continue
		}
		s.Value, s.Source, found = c.value, c.source, true
	}
	return s
}

func profileSource(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("config profile %q", name)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
