package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/tulparex/btcturk/support/logger"
	"github.com/tulparex/btcturk/support/networking"
	"github.com/tulparex/btcturk/support/sdk"
	"github.com/tulparex/btcturk/support/utils"
)

// clientConfig represents the configuration params for the client
type clientConfig struct {
	APIKey         string `valid:"-" toml:"API_KEY"`
	APISecret      string `valid:"-" toml:"API_SECRET"`
	BaseURL        string `valid:"-" toml:"BASE_URL"`
	TimeoutSeconds int32  `valid:"-" toml:"TIMEOUT_SECONDS"`
}

// String impl.
func (c clientConfig) String() string {
	return utils.StructString(c, map[string]func(interface{}) interface{}{
		"API_SECRET": utils.Hide,
	})
}

// Init initializes this config, filling in the defaults for unset values
func (c *clientConfig) Init() error {
	if c.BaseURL == "" {
		c.BaseURL = sdk.ProductionBaseURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int32(networking.DefaultTimeout / time.Second)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("TIMEOUT_SECONDS must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

// readConfig loads the config file. A missing file is not an error, it leaves
// the client without credentials so only market data commands work.
func readConfig(l logger.Logger, filename string) clientConfig {
	var cfg clientConfig
	_, e := toml.DecodeFile(filename, &cfg)
	if os.IsNotExist(e) {
		l.Infof("config file '%s' not found, continuing without credentials\n", filename)
	} else {
		utils.CheckConfigError(cfg, e, filename)
	}

	if e := cfg.Init(); e != nil {
		logger.Fatal(l, e)
	}
	return cfg
}

// makeClient builds the REST client from the config file
func makeClient(l logger.Logger) *sdk.Btcturk {
	cfg := readConfig(l, *configPath)
	if *rootVerbose {
		utils.LogConfig(cfg)
	}

	client, e := sdk.MakeBtcturkWithParams(cfg.APIKey, cfg.APISecret, cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if e != nil {
		logger.Fatal(l, errors.Wrap(e, "could not make the exchange client"))
	}
	return client
}
