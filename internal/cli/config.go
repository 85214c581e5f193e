package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"estoque/internal/client"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	envPrefix = "ESTOQUE"

	cfgKeyAPIURL = "api_url"
)

// loadConfig resolves the client configuration. Precedence for api_url is
// --api-url flag > ESTOQUE_API_URL > config.yaml > default. The flag is bound
// by the caller. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, client.DefaultBaseURL)
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv(cfgKeyAPIURL); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if configDir == "" {
		configDir = defaultConfigDir()
	}
	if configDir == "" {
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "estoque")
}
