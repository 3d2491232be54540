// Package common contains shared constants and sentinel errors used across
// mailadmin components.
package common

// EnvPrefix is prepended to every environment variable the tool reads,
// e.g. MAILADMIN_SMTP_PASSWORD.
const EnvPrefix = "MAILADMIN_"

// TimestampLayout is the layout used for the created_at column.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"
