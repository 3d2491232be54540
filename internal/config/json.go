package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mailadmin/internal/flagx"
	"github.com/dmitrijs2005/mailadmin/internal/timex"
)

// JSONConfig is a DTO used only for unmarshalling. Zero values mean "not
// set" and leave the current Config value in place.
type JSONConfig struct {
	UsersFile    string `json:"users_file"`
	BatchFile    string `json:"batch_file"`
	ExportFile   string `json:"export_file"`
	TemplateFile string `json:"template_file"`
	LogFile      string `json:"log_file"`
	LogLevel     string `json:"log_level"`

	Transport    string         `json:"transport"`
	SMTPHost     string         `json:"smtp_host"`
	SMTPPort     int            `json:"smtp_port"`
	SMTPUsername string         `json:"smtp_username"`
	SMTPPassword string         `json:"smtp_password"`
	SMTPTimeout  timex.Duration `json:"smtp_timeout"`

	SenderName    string `json:"sender_name"`
	SenderEmail   string `json:"sender_email"`
	AllowedDomain string `json:"allowed_domain"`

	BulkDelay *timex.Duration `json:"bulk_delay"`
	MaxBatch  int             `json:"max_batch"`

	AdminUser     string `json:"admin_user"`
	AdminPassword string `json:"admin_password"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Without the flag it does nothing. Read and decode errors panic, as the
// process cannot continue with a half-read configuration.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JSONConfig) apply(cfg *Config) {
	setString(&cfg.UsersFile, jc.UsersFile)
	setString(&cfg.BatchFile, jc.BatchFile)
	setString(&cfg.ExportFile, jc.ExportFile)
	setString(&cfg.TemplateFile, jc.TemplateFile)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogLevel, jc.LogLevel)

	setString(&cfg.Transport, jc.Transport)
	setString(&cfg.SMTPHost, jc.SMTPHost)
	if jc.SMTPPort != 0 {
		cfg.SMTPPort = jc.SMTPPort
	}
	setString(&cfg.SMTPUsername, jc.SMTPUsername)
	if jc.SMTPTimeout.Duration != 0 {
		cfg.SMTPTimeout = jc.SMTPTimeout.Duration
	}

	setString(&cfg.SenderName, jc.SenderName)
	setString(&cfg.SenderEmail, jc.SenderEmail)
	setString(&cfg.AllowedDomain, jc.AllowedDomain)

	// A zero delay is a legitimate setting, hence the pointer.
	if jc.BulkDelay != nil {
		cfg.BulkDelay = jc.BulkDelay.Duration
	}
	if jc.MaxBatch != 0 {
		cfg.MaxBatch = jc.MaxBatch
	}

	setString(&cfg.AdminUser, jc.AdminUser)

	if jc.SMTPPassword != "" || jc.AdminPassword != "" {
		cfg.SecretsFromFile = true
	}
	setString(&cfg.SMTPPassword, jc.SMTPPassword)
	setString(&cfg.AdminPassword, jc.AdminPassword)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
