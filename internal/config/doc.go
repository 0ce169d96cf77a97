// Package config loads covidboard's TOML configuration.
//
// # Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when given
//  2. ~/.config/covidboard/config.toml
//  3. Built-in defaults when the file does not exist
//
// Fields that are missing or blank fall back to their defaults. A file that
// exists but cannot be parsed is an error, so a typo never silently points the
// dashboard at the wrong API.
//
// # Keys
//
//	api_base_url    = "https://disease.sh"
//	request_timeout = "10s"      # Go duration
//	history_days    = 120
//	log_file        = "~/.local/state/covidboard/covidboard.log"  # "" disables
//	log_level       = "info"
//	metrics_addr    = ""         # e.g. "127.0.0.1:9102"
//
// Paths beginning with ~ are expanded against the user's home directory.
package config
