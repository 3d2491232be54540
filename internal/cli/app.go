package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/mailadmin/internal/config"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/dmitrijs2005/mailadmin/internal/repositories/users"
	"github.com/dmitrijs2005/mailadmin/internal/services"
	"github.com/dmitrijs2005/mailadmin/internal/transport"
	"github.com/dmitrijs2005/mailadmin/internal/validate"
)

type App struct {
	config      *config.Config
	userService services.UserService
	sendService services.SendService
	validator   *validate.Validator
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp builds the shell and its services from c.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	v := validate.New(c.AllowedDomain)
	repo := users.NewCSVRepository(c.UsersFile, logger)

	var templates message.TemplateSource
	if c.TemplateFile != "" {
		templates = message.FileTemplate{Path: c.TemplateFile}
	}
	builder := message.NewBuilder(message.Identity{Name: c.SenderName, Address: c.SenderEmail}, templates, logger)

	us := services.NewUserService(repo, v, logger)
	ss := services.NewSendService(newDialer(c, logger), builder, v, logger, c.BulkDelay)

	return &App{
		config:      c,
		userService: us,
		sendService: ss,
		validator:   v,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func newDialer(c *config.Config, logger logging.Logger) transport.Dialer {
	switch c.Transport {
	case config.TransportLog:
		return transport.NewLogDialer(logger)
	case config.TransportResend:
		return transport.NewResendDialer(c.ResendAPIKey)
	}
	return transport.NewSMTPDialer(transport.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUsername,
		Password: c.SMTPPassword,
		Timeout:  c.SMTPTimeout,
	})
}

// Run prepares the store, passes the admin gate and blocks in the menu loop
// until the operator exits. It returns common.ErrAccessDenied on a failed
// login.
func (a *App) Run(ctx context.Context) error {
	if err := a.userService.Init(ctx); err != nil {
		return err
	}

	printBanner(a.out)
	a.warnMissingTemplate()

	if err := a.Authenticate(ctx); err != nil {
		printError(a.out, "Access denied")
		return err
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

func (a *App) warnMissingTemplate() {
	if a.config.TemplateFile == "" {
		return
	}
	if _, err := os.Stat(a.config.TemplateFile); errors.Is(err, fs.ErrNotExist) {
		printWarn(a.out, fmt.Sprintf("Warning: %s not found. Using plain text emails.", a.config.TemplateFile))
	}
}
