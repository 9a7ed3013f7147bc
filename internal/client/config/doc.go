// Package config loads runtime configuration for the Brainly client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-s string   base URL for share links
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log file path
//	-m string   tui or repl
//
// # File schema
//
//	{
//	  "base_url": "http://localhost:3000",
//	  "share_base_url": "http://localhost:5173",
//	  "request_timeout": "10s",
//	  "success_delay": "1.5s",
//	  "mobile_breakpoint": 100,
//	  "mode": "tui"
//	}
//
// Fields left out of the file keep their previous value.
package config
