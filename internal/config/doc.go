// Package config loads the trader configuration.
//
// Configuration is YAML with ${VAR} environment expansion; a .env file in the
// working directory is loaded first if present. Credentials may come from the
// file or from the KALSHI_ACCESS_KEY_ID / KALSHI_PRIVATE_KEY_PEM /
// KALSHI_PRIVATE_KEY_PATH environment variables.
package config
