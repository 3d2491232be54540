package message

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/google/uuid"
)

// Kind selects default subject and body.
type Kind int

const (
	KindWelcome Kind = iota
	KindCustom
)

const (
	WelcomeSubject = "Welcome to the system"
	CustomSubject  = "Admin Message"
)

// Options tune a single Build call. Empty Subject or Body fall back to the
// defaults for Kind.
type Options struct {
	Kind    Kind
	Subject string
	Body    string
	UseHTML bool
}

// WelcomeHTML is the option set used by every send mode.
var WelcomeHTML = Options{Kind: KindWelcome, UseHTML: true}

type Builder struct {
	from      Identity
	templates TemplateSource
	logger    logging.Logger
	now       func() time.Time
}

// NewBuilder returns a builder for the sender identity. templates may be nil,
// in which case every message is plain text.
func NewBuilder(from Identity, templates TemplateSource, logger logging.Logger) *Builder {
	return &Builder{from: from, templates: templates, logger: logger, now: time.Now}
}

// Build constructs the message for one recipient. It never fails: a template
// that cannot be loaded is logged and the message goes out as plain text.
func (b *Builder) Build(ctx context.Context, to, username string, opts Options) *Outbound {
	msg := &Outbound{
		From:      b.from,
		To:        to,
		ReplyTo:   b.from.Address,
		Subject:   opts.Subject,
		PlainBody: opts.Body,
		MessageID: fmt.Sprintf("%s@%s", uuid.NewString(), b.from.Domain()),
		Date:      b.now(),
	}

	if msg.Subject == "" {
		msg.Subject = b.defaultSubject(opts.Kind)
	}
	if msg.PlainBody == "" {
		msg.PlainBody = b.defaultBody(username)
	}

	if opts.UseHTML && b.templates != nil {
		tmpl, err := b.templates.Load()
		if err != nil {
			b.logger.Warn(ctx, "html template unavailable, sending plain text", "error", err)
		} else {
			msg.HTMLBody = Render(tmpl, username)
		}
	}
	return msg
}

func (b *Builder) defaultSubject(k Kind) string {
	if k == KindCustom {
		return CustomSubject
	}
	return WelcomeSubject
}

func (b *Builder) defaultBody(username string) string {
	return fmt.Sprintf("Hello mr %s,\n\nWelcome to -ADMIN- tools you are now in admin data thank you for login\n\nBest regards,\n%s\n",
		username, b.from.Name)
}
