package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"

	"github.com/tulparex/btcturk/support/sdk"
)

func TestClientConfig(t *testing.T) {
	dir, e := ioutil.TempDir("", "btcturk-config")
	if !assert.NoError(t, e) {
		return
	}
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "btcturk.cfg")
	contents := `API_KEY = "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d"
API_SECRET = "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm"
TIMEOUT_SECONDS = 30
`
	e = ioutil.WriteFile(filename, []byte(contents), 0644)
	if !assert.NoError(t, e) {
		return
	}

	var cfg clientConfig
	_, e = toml.DecodeFile(filename, &cfg)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d", cfg.APIKey)
	assert.Equal(t, "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm", cfg.APISecret)
	assert.Equal(t, int32(30), cfg.TimeoutSeconds)

	e = cfg.Init()
	if !assert.NoError(t, e) {
		return
	}
	// unset values fall back to defaults, set values stay
	assert.Equal(t, sdk.ProductionBaseURL, cfg.BaseURL)
	assert.Equal(t, int32(30), cfg.TimeoutSeconds)
}

func TestClientConfigDefaults(t *testing.T) {
	cfg := clientConfig{}

	e := cfg.Init()

	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, sdk.ProductionBaseURL, cfg.BaseURL)
	assert.Equal(t, int32(10), cfg.TimeoutSeconds)
}

func TestClientConfigRejectsNegativeTimeout(t *testing.T) {
	cfg := clientConfig{TimeoutSeconds: -5}

	e := cfg.Init()

	if !assert.Error(t, e) {
		return
	}
	assert.Contains(t, e.Error(), "TIMEOUT_SECONDS")
}

func TestClientConfigStringHidesSecret(t *testing.T) {
	cfg := clientConfig{
		APIKey:         "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d",
		APISecret:      "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm",
		BaseURL:        "https://api.btcturk.com",
		TimeoutSeconds: 10,
	}

	s := cfg.String()

	assert.Contains(t, s, "API_KEY: a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d")
	assert.Contains(t, s, "API_SECRET: \n")
	assert.NotContains(t, s, "c2VjcmV0LWtleS1ieXRlcy0xMjM0NTY3ODkwYWJjZGVm")
}
