package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"client"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	got := LoadConfig()
	want := &Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 10 * time.Second}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"vault:1","request_timeout":"3s","access_token":"tok"}`), 0o600))

	withArgs(t, "-c", path, "-a", "vault:2")

	got := LoadConfig()
	want := &Config{ServerEndpointAddr: "vault:2", RequestTimeout: 3 * time.Second, AccessToken: "tok"}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"tok"}`), 0o600))
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, "tok", cfg.AccessToken)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	withArgs(t, "-c", path)

	require.Panics(t, func() { parseJson(&Config{}) })
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-w", "750ms", "-k", "abc", "-unknown", "x")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "abc", cfg.AccessToken)

	withArgs(t, "-w", "soon")
	require.Panics(t, func() { parseFlags(&Config{}) })
}
