// Integration tests for the CLI. They build the binary, run it with various
// arguments, and assert on exit codes and output. No Kafka cluster or DTC
// server is required for the cases covered here.
package main_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

var (
	binaryPath string
	configHome string
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "dtc-replay-integration-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	binaryPath = filepath.Join(dir, "dtc-replay")
	configHome = filepath.Join(dir, "config")
	if err := exec.Command("go", "build", "-o", binaryPath, ".").Run(); err != nil {
		panic("build failed: " + err.Error())
	}
	os.Exit(m.Run())
}

// cliEnv isolates the binary from the caller's configuration
func cliEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		switch {
		case strings.HasPrefix(kv, "KAFKA_BROKERS="),
			strings.HasPrefix(kv, "DTC_SERVER="),
			strings.HasPrefix(kv, "DTC_REPLAY_LOG_LEVEL="),
			strings.HasPrefix(kv, "XDG_CONFIG_HOME="):
			continue
		}
		env = append(env, kv)
	}
	return append(env, "XDG_CONFIG_HOME="+configHome)
}

func runCLI(args ...string) (stdout, stderr []byte, exitCode int) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = cliEnv()
	cmd.Dir = configHome
	_ = os.MkdirAll(configHome, 0o755)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	stdout = outBuf.Bytes()
	stderr = errBuf.Bytes()
	if err == nil {
		return stdout, stderr, 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return stdout, stderr, ee.ExitCode()
	}
	return stdout, stderr, -1
}

func TestCLI_Cat_MissingInput_Exit1(t *testing.T) {
	_, stderr, code := runCLI("cat")
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(string(stderr), "input") && !strings.Contains(string(stderr), "required") {
		t.Errorf("stderr should mention input/required; got %q", string(stderr))
	}
}

func TestCLI_Cat_InvalidFormat_Exit1(t *testing.T) {
	path := createCaptureFile(t, heartbeat())
	_, _, code := runCLI("--format=invalid", "cat", "--input", path)
	if code != 1 {
		t.Errorf("expected exit 1 for invalid --format, got %d", code)
	}
}

func TestCLI_Cat_NotACapture_Exit1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.dtc")
	if err := os.WriteFile(path, []byte("definitely not a capture file"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, stderr, code := runCLI("cat", "--input", path)
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(string(stderr), "version") {
		t.Errorf("stderr should mention the version; got %q", string(stderr))
	}
}

func TestCLI_Cat_OutputJSON(t *testing.T) {
	path := createCaptureFile(t, heartbeat())
	stdout, stderr, code := runCLI("--format=json", "cat", "--input", path)
	if code != 0 {
		t.Fatalf("cat json: exit %d, stderr %q", code, string(stderr))
	}
	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 JSON line, got %d", len(lines))
	}
	var obj struct {
		Timestamp time.Time `json:"timestamp"`
		Direction string    `json:"direction"`
		Type      string    `json:"type"`
		TypeID    int       `json:"type_id"`
		Fields    []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &obj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if obj.Direction != "server" || obj.TypeID != int(dtc.TypeHeartbeat) {
		t.Errorf("expected a server heartbeat, got %+v", obj)
	}
	if !obj.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("timestamp: got %s", obj.Timestamp)
	}
	found := false
	for _, f := range obj.Fields {
		if f.Name == "DroppedMessages" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DroppedMessages field, got %+v", obj.Fields)
	}
}

func TestCLI_Cat_OutputRaw(t *testing.T) {
	msg := heartbeat()
	path := createCaptureFile(t, msg)
	stdout, _, code := runCLI("--format=raw", "cat", "--input", path)
	if code != 0 {
		t.Fatalf("cat raw: exit %d", code)
	}
	if !bytes.Equal(stdout, msg) {
		t.Errorf("raw output: got %x, want %x", stdout, msg)
	}
}

func TestCLI_Cat_Count(t *testing.T) {
	path := createCaptureFile(t, heartbeat(), heartbeat())
	stdout, stderr, code := runCLI("cat", "--input", path, "--count")
	if code != 0 {
		t.Fatalf("cat --count: exit %d, stderr %q", code, string(stderr))
	}
	trimmed := strings.TrimSpace(string(stdout))
	if trimmed != "2" {
		t.Errorf("expected stdout '2', got %q", trimmed)
	}
}

func TestCLI_Cat_TypeFilter(t *testing.T) {
	path := createCaptureFile(t, heartbeat(), heartbeat())
	stdout, _, code := runCLI("cat", "--input", path, "--count", "--type", "LOGON_RESPONSE")
	if code != 0 {
		t.Fatalf("cat --type: exit %d", code)
	}
	if trimmed := strings.TrimSpace(string(stdout)); trimmed != "0" {
		t.Errorf("expected stdout '0', got %q", trimmed)
	}

	_, _, code = runCLI("cat", "--input", path, "--type", "NOT_A_TYPE")
	if code != 1 {
		t.Errorf("expected exit 1 for unknown type, got %d", code)
	}
}

func TestCLI_Info_OutputJSON(t *testing.T) {
	path := createCaptureFile(t, heartbeat(), heartbeat())
	stdout, stderr, code := runCLI("--format=json", "info", "--input", path)
	if code != 0 {
		t.Fatalf("info: exit %d, stderr %q", code, string(stderr))
	}
	var info struct {
		Version  int `json:"version"`
		Messages int `json:"messages"`
		Types    []struct {
			Type  string `json:"type"`
			Count int    `json:"count"`
		} `json:"types"`
	}
	if err := json.Unmarshal(stdout, &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info.Version != transcoder.ProtocolVersion || info.Messages != 2 {
		t.Errorf("unexpected info %+v", info)
	}
	if len(info.Types) != 1 || info.Types[0].Count != 2 {
		t.Errorf("unexpected type counts %+v", info.Types)
	}
}

func TestCLI_Catalog(t *testing.T) {
	stdout, stderr, code := runCLI("--format=json", "catalog", "--direction", "client")
	if code != 0 {
		t.Fatalf("catalog: exit %d, stderr %q", code, string(stderr))
	}
	if !strings.Contains(string(stdout), `"name":"LOGON_REQUEST"`) {
		t.Errorf("catalog should list LOGON_REQUEST; got %q", string(stdout))
	}
	if strings.Contains(string(stdout), `"direction":"server"`) {
		t.Errorf("catalog should only list client messages")
	}
}

func TestCLI_Record_NoServer_Exit1(t *testing.T) {
	_, stderr, code := runCLI("record", "--output", filepath.Join(t.TempDir(), "out.dtc"))
	if code != 1 {
		t.Errorf("expected exit 1 without a server, got %d", code)
	}
	if !strings.Contains(string(stderr), "server") {
		t.Errorf("stderr should mention the server; got %q", string(stderr))
	}
}

func TestCLI_Record_ConnectivityFailure_Exit3(t *testing.T) {
	_, stderr, code := runCLI("record", "--server", "127.0.0.1:19999", "--output", filepath.Join(t.TempDir(), "out.dtc"))
	if code != 3 {
		t.Errorf("expected exit 3 (connectivity), got %d", code)
	}
	if !strings.Contains(string(stderr), "failed to connect") {
		t.Errorf("stderr should mention connection failure; got %q", string(stderr))
	}
}

func TestCLI_Record_Topic_NoBrokers_Exit1(t *testing.T) {
	_, stderr, code := runCLI("record", "--topic", "dtc", "--output", filepath.Join(t.TempDir(), "out.dtc"))
	if code != 1 {
		t.Errorf("expected exit 1 without brokers, got %d", code)
	}
	if !strings.Contains(string(stderr), "no brokers") {
		t.Errorf("stderr should mention no brokers; got %q", string(stderr))
	}
}

func TestCLI_Replay_NoTarget_Exit1(t *testing.T) {
	path := createCaptureFile(t, heartbeat())
	_, stderr, code := runCLI("replay", "--input", path)
	if code != 1 {
		t.Errorf("expected exit 1 without --topic or --target, got %d", code)
	}
	if !strings.Contains(string(stderr), "topic") {
		t.Errorf("stderr should mention topic; got %q", string(stderr))
	}
}

func TestCLI_Replay_DryRun(t *testing.T) {
	path := createCaptureFile(t, heartbeat(), heartbeat())
	_, stderr, code := runCLI("replay", "--input", path, "--dry-run")
	if code != 0 {
		t.Errorf("dry run: expected exit 0, got %d, stderr %q", code, string(stderr))
	}
}

func TestCLI_Replay_ConnectivityFailure_Exit3(t *testing.T) {
	path := createCaptureFile(t, heartbeat())
	_, _, code := runCLI("replay", "--input", path, "--target", "127.0.0.1:19999")
	if code != 3 {
		t.Errorf("expected exit 3 (connectivity), got %d", code)
	}
}

func TestCLI_Config(t *testing.T) {
	stdout, stderr, code := runCLI("--format=table", "config")
	if code != 0 {
		t.Errorf("config: expected exit 0, got %d, stderr %q", code, string(stderr))
	}
	combined := string(stdout) + string(stderr)
	for _, want := range []string{"config file", "profile", "brokers", "server"} {
		if !strings.Contains(combined, want) {
			t.Errorf("config output should contain %q; got:\n%s", want, combined)
		}
	}
}

func TestCLI_Config_LoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	const yamlContent = `
default_profile: prod
profiles:
  prod:
    brokers:
      - kafka1.example.com:9092
      - kafka2.example.com:9092
    dtc_server: dtc.example.com:11099
  dev:
    brokers:
      - localhost:9092
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runCLI("--config", configPath, "--format=json", "config")
	if code != 0 {
		t.Fatalf("config with file: exit %d, stderr %q", code, string(stderr))
	}
	var resolved struct {
		ConfigFile string `json:"config_file"`
		Profile    struct {
			Value string `json:"value"`
		} `json:"profile"`
		Brokers struct {
			Value  []string `json:"value"`
			Source string   `json:"source"`
		} `json:"brokers"`
		Server struct {
			Value string `json:"value"`
		} `json:"server"`
	}
	if err := json.Unmarshal(stdout, &resolved); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if resolved.ConfigFile != configPath || resolved.Profile.Value != "prod" {
		t.Errorf("unexpected config %+v", resolved)
	}
	if len(resolved.Brokers.Value) != 2 || resolved.Brokers.Value[0] != "kafka1.example.com:9092" {
		t.Errorf("brokers should come from the prod profile; got %+v", resolved.Brokers)
	}
	if resolved.Server.Value != "dtc.example.com:11099" {
		t.Errorf("server should come from the prod profile; got %q", resolved.Server.Value)
	}
}

func TestCLI_Config_Check_ConnectivityFailure_Exit3(t *testing.T) {
	_, _, code := runCLI("--brokers", "localhost:19999", "config", "--check")
	if code != 3 {
		t.Errorf("expected exit 3 (connectivity), got %d", code)
	}
}

func TestCLI_Version(t *testing.T) {
	stdout, stderr, code := runCLI("version")
	if code != 0 {
		t.Errorf("version: expected exit 0, got %d, stderr %q", code, string(stderr))
	}
	if !strings.Contains(string(stdout), "dtc-replay version") {
		t.Errorf("version output should mention dtc-replay version; got %q", string(stdout))
	}
}

func heartbeat() []byte {
	hb := dtc.Heartbeat.New()
	dtc.Heartbeat.DroppedMessages.Set(hb, 3)
	return hb.Encode()
}

// createCaptureFile writes server messages in the current format and returns the path.
func createCaptureFile(t *testing.T, msgs ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.dtc")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := transcoder.NewEncodeWriter(f)
	if err != nil {
		f.Close()
		t.Fatal(err)
	}
	for _, msg := range msgs {
		entry := transcoder.Entry{Timestamp: time.Unix(1700000000, 0), Direction: dtc.FromServer, Message: msg}
		if _, err := enc.Write(entry); err != nil {
			enc.Close()
			t.Fatal(err)
		}
	}
	// enc.Close() closes the underlying file
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
