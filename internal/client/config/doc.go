// Package config loads runtime configuration for the HouseConnect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables HC_*, optionally seeded from a .env file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "backend_url": "http://localhost:8080/HouseConnect",
//	  "storage_path": "houseconnect.db",
//	  "request_timeout": "15s",
//	  "online_check_interval": "5s",
//	  "log_level": "info",
//	  "log_file": ""
//	}
package config
