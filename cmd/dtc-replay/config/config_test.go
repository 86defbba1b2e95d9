package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const testConfig = `
default_profile: prod
profiles:
  prod:
    brokers:
      - kafka1.example.com:9092
      - kafka2.example.com:9092
    dtc_server: feed.example.com:11099
    max_message_size: 4096
  dev:
    brokers: [localhost:9092]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.DefaultProfile != "prod" {
		t.Errorf("expected default profile prod, got %q", c.DefaultProfile)
	}
	if got := c.Profiles["prod"].DTCServer; got != "feed.example.com:11099" {
		t.Errorf("unexpected dtc_server %q", got)
	}
	if got := c.Profiles["prod"].MaxMessageSize; got != 4096 {
		t.Errorf("unexpected max_message_size %d", got)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.DefaultProfile != "" || len(c.Profiles) != 0 {
		t.Errorf("expected empty config, got %+v", c)
	}
}

func TestLoadConfig_NoDefaultLocation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	buf := &bytes.Buffer{}
	prev := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })

	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.DefaultProfile != "" || len(c.Profiles) != 0 {
		t.Errorf("expected empty config, got %+v", c)
	}
	if !strings.Contains(buf.String(), "home directory") {
		t.Errorf("expected the lookup failure to be logged, got %q", buf.String())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":            "profiles: [",
		"undefined default": "default_profile: nope\nprofiles:\n  prod: {}\n",
		"size out of range": "profiles:\n  prod:\n    max_message_size: 70000\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBrokers_Precedence(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBrokers, "env1:9092, env2:9092")

	s, err := c.Brokers([]string{"flag:9092"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Value, []string{"flag:9092"}) || s.Source != "--brokers" {
		t.Errorf("expected flag brokers, got %+v", s)
	}
	if len(s.Overrides) != 2 {
		t.Errorf("expected profile and env overridden, got %v", s.Overrides)
	}

	s, err = c.Brokers(nil, "dev")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Value, []string{"localhost:9092"}) {
		t.Errorf("expected dev profile brokers, got %v", s.Value)
	}

	empty := Config{}
	s, err = empty.Brokers(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Value, []string{"env1:9092", "env2:9092"}) || s.Source != "env "+EnvBrokers {
		t.Errorf("expected env brokers, got %+v", s)
	}
}

func TestResolveBrokers_None(t *testing.T) {
	t.Setenv(EnvBrokers, "")
	_, err := ResolveBrokers(nil, "", Config{})
	if !errors.Is(err, ErrNoBrokers) {
		t.Errorf("expected ErrNoBrokers, got %v", err)
	}
}

func TestResolveServer(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvServer, "")

	addr, err := ResolveServer("", "", c)
	if err != nil {
		t.Fatal(err)
	}
	if addr != "feed.example.com:11099" {
		t.Errorf("expected server from default profile, got %q", addr)
	}

	if _, err := ResolveServer("", "dev", c); !errors.Is(err, ErrNoServer) {
		t.Errorf("expected ErrNoServer for dev profile, got %v", err)
	}

	t.Setenv(EnvServer, "env.example.com:11099")
	addr, err = ResolveServer("", "dev", c)
	if err != nil {
		t.Fatal(err)
	}
	if addr != "env.example.com:11099" {
		t.Errorf("expected server from env, got %q", addr)
	}
}

func TestMaxMessageSize(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}

	s, err := c.MaxMessageSize(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Value != 4096 {
		t.Errorf("expected profile size 4096, got %d", s.Value)
	}

	s, err = c.MaxMessageSize(1024, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Value != 1024 || s.Source != "--max-message-size" {
		t.Errorf("expected flag size 1024, got %+v", s)
	}
}

func TestProfileName_Unknown(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ProfileName("staging"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "dtc-replay", "config.yaml") {
		t.Errorf("unexpected default path %q", got)
	}
}
