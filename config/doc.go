// Package config loads SDK configuration from environment variables,
// an optional .env file, and an optional YAML file.
//
// The base URL comes from MARKETPLACE_API_URL and falls back to the local
// development endpoint. Remaining settings use the MARKETPLACE_ prefix
// (MARKETPLACE_TIMEOUT, MARKETPLACE_LOGGING_LEVEL, ...) or the yaml keys
// of Config.
package config
