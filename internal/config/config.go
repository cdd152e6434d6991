// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// EnvConfigJSON is the environment variable carrying a JSON override that is
// merged over the TOML file. Useful for container deployments.
const EnvConfigJSON = "LINKDECK_CONFIG_JSON"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for linkdeck and fill the defaults the
// daemon relies on. Misconfigured store credentials are not fatal here; the
// store layer degrades to the bundled document instead.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Store.Backend == "" {
		c.Store.Backend = StoreBackendFile
	}

	switch c.Store.Backend {
	case StoreBackendFile, StoreBackendKV, StoreBackendDB:
	default:
		return errors.Wrap(ErrUnknownStoreBackend, invalidErrMessage)
	}

	if c.Store.FilePath == "" {
		c.Store.FilePath = "data/links.json"
	}

	if c.Store.Key == "" {
		c.Store.Key = "linkdeck:document"
	}

	if c.Analytics.Backend == "" {
		c.Analytics.Backend = AnalyticsBackendDB
	}

	switch c.Analytics.Backend {
	case AnalyticsBackendDB, AnalyticsBackendKV:
	default:
		return errors.Wrap(ErrUnknownAnalyticsBackend, invalidErrMessage)
	}

	needsRedis := c.Store.Backend == StoreBackendKV || c.Analytics.Backend == AnalyticsBackendKV
	if needsRedis && c.Redis.Addr == "" {
		return errors.Wrap(ErrRedisAddrMissing, invalidErrMessage)
	}

	return nil
}
