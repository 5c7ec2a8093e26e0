// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//   - Load parses a struct once per type and caches it for the process.
//   - Parse reads the current environment without caching, handy in tests.
//   - LoadEnv loads explicit .env files; MustLoad panics on failure.
//   - ResetCache forces the next Load to parse again.
//
// The perudoc package uses it to read the RUC prefix allow-list and CE
// length bounds:
//
//	cfg, err := perudoc.LoadConfig() // PERUDOC_RUC_PREFIXES, PERUDOC_CE_MIN_LENGTH, ...
//
// All functions are safe for concurrent use.
package config
