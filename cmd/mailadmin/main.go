package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/mailadmin/internal/buildinfo"
	"github.com/dmitrijs2005/mailadmin/internal/cli"
	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/config"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closer.Close()

	if cfg.SecretsFromFile {
		logger.Warn(ctx, "passwords found in the config file, prefer environment variables",
			"env", common.EnvPrefix+"SMTP_PASSWORD")
	}
	if cfg.Transport == config.TransportSMTP && !cfg.SMTPReady() {
		logger.Warn(ctx, "smtp settings incomplete, sends will fail",
			"host", cfg.SMTPHost, "username_set", cfg.SMTPUsername != "", "sender_set", cfg.SenderEmail != "")
	}

	if cfg.Transport == config.TransportResend && !cfg.ResendReady() {
		logger.Warn(ctx, "resend settings incomplete, sends will fail",
			"env", common.EnvPrefix+"RESEND_API_KEY")
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		closer.Close()
		if errors.Is(err, common.ErrAccessDenied) {
			os.Exit(1)
		}
		log.Fatalf("%v", err)
	}

}
