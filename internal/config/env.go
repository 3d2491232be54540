package config

import (
	"os"

	"github.com/dmitrijs2005/mailadmin/internal/common"
)

// parseEnv overlays cfg with MAILADMIN_* variables. Only identities and
// secrets are read here; file locations belong to JSON or flags.
func parseEnv(cfg *Config) {
	envString(&cfg.SMTPUsername, "SMTP_USERNAME")
	envString(&cfg.SMTPPassword, "SMTP_PASSWORD")
	envString(&cfg.ResendAPIKey, "RESEND_API_KEY")
	envString(&cfg.SenderEmail, "SENDER_EMAIL")
	envString(&cfg.AdminUser, "ADMIN_USER")
	envString(&cfg.AdminPassword, "ADMIN_PASSWORD")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(common.EnvPrefix + name); ok && v != "" {
		*dst = v
	}
}
