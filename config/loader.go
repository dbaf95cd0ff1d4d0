package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig controls where Load looks for configuration files.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config path. Empty means search the
	// standard locations.
	ConfigFile string
	// EnvFile is an explicit .env path. Empty means "./.env" if present.
	EnvFile string
}

// Load builds the SDK configuration from the environment and optional
// files. Precedence, highest first: environment variables, YAML file,
// defaults. Missing files are not an error; an unreadable explicit file is.
func Load(opts LoaderConfig) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("MARKETPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The base URL keeps its historical variable name.
	_ = v.BindEnv("base_url", "MARKETPLACE_API_URL")
	_ = v.BindEnv("timeout")
	_ = v.BindEnv("request_id")
	_ = v.BindEnv("logging.level")
	_ = v.BindEnv("logging.format")
	_ = v.BindEnv("logging.output")

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile loads the .env file into the process environment.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: loading env file %s: %w", path, err)
	}
	return nil
}

// findConfigFile searches for config.yml in standard locations.
func findConfigFile() string {
	searchPaths := []string{
		"./config.yml",
		"./config/config.yml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
