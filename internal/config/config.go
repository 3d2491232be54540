package config

import (
	"fmt"
	"time"
)

// Transport names accepted in Config.Transport.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportLog    = "log"
)

// Config holds runtime settings for the mailadmin shell.
//
// Units: durations are time.Duration; SMTPPort is a TCP port.
type Config struct {
	UsersFile    string
	BatchFile    string
	ExportFile   string
	TemplateFile string
	LogFile      string
	LogLevel     string

	Transport    string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPTimeout  time.Duration

	// ResendAPIKey authenticates the resend transport. Environment only.
	ResendAPIKey string

	SenderName    string
	SenderEmail   string
	AllowedDomain string

	BulkDelay time.Duration
	MaxBatch  int

	AdminUser     string
	AdminPassword string

	// SecretsFromFile is set when the JSON file carried a password, so the
	// caller can warn about it.
	SecretsFromFile bool
}

// LoadDefaults populates c with the defaults the tool ships with.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.csv"
	c.BatchFile = "users.txt"
	c.ExportFile = "users_export.csv"
	c.TemplateFile = "email_template.html"
	c.LogFile = "messages_sent.log"
	c.LogLevel = "info"

	c.Transport = TransportSMTP
	c.SMTPHost = "smtp.gmail.com"
	c.SMTPPort = 587
	c.SMTPTimeout = 30 * time.Second

	c.SenderName = "Admin Team"
	c.AllowedDomain = "gmail.com"

	c.BulkDelay = 3 * time.Second
	c.MaxBatch = 100

	c.AdminUser = "admin"
}

// Validate reports settings that would make every operation fail.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportSMTP, TransportResend, TransportLog:
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	if c.UsersFile == "" {
		return fmt.Errorf("users file is required")
	}
	if c.BulkDelay < 0 {
		return fmt.Errorf("bulk delay must not be negative")
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("max batch must be at least 1")
	}
	if c.AllowedDomain == "" {
		return fmt.Errorf("allowed domain is required")
	}
	return nil
}

// SMTPReady reports whether the relay settings are complete enough to dial.
func (c *Config) SMTPReady() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != "" && c.SenderEmail != ""
}

// ResendReady reports whether the HTTP API transport has a key and a sender.
func (c *Config) ResendReady() bool {
	return c.ResendAPIKey != "" && c.SenderEmail != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)

	// The relay account doubles as the sender when nothing else is set.
	if cfg.SenderEmail == "" {
		cfg.SenderEmail = cfg.SMTPUsername
	}
	return cfg
}
