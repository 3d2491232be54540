// Package config loads runtime configuration for the mailadmin shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJSON).
//  3. Environment variables with the MAILADMIN_ prefix (see parseEnv).
//     Relay and admin secrets are expected here.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   users CSV file
//	-b string   batch recipients file
//	-t string   HTML template file
//	-l string   log file ("-" for stderr)
//	-d int      delay between bulk sends (seconds)
//	-dry-run    log messages instead of sending them
//
// # JSON schema
//
// Durations use timex.Duration, so "3s" and integer nanoseconds both work:
//
//	{
//	  "users_file": "users.csv",
//	  "smtp_host": "smtp.gmail.com",
//	  "smtp_port": 587,
//	  "sender_email": "admin@gmail.com",
//	  "bulk_delay": "3s"
//	}
//
// Secrets in JSON are accepted but discouraged; see Config.SecretsFromFile.
package config
