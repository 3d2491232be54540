package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/wneessen/go-mail"
)

// SMTPConfig describes the relay account.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPDialer connects to the relay with mandatory STARTTLS and PLAIN auth.
type SMTPDialer struct {
	cfg SMTPConfig
}

func NewSMTPDialer(cfg SMTPConfig) *SMTPDialer {
	return &SMTPDialer{cfg: cfg}
}

func (d *SMTPDialer) Dial(ctx context.Context) (Conn, error) {
	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTimeout(d.cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransportConnect, err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s:%d: %v", common.ErrTransportConnect, d.cfg.Host, d.cfg.Port, err)
	}
	return &smtpConn{client: client}, nil
}

type smtpConn struct {
	client *mail.Client
}

func (c *smtpConn) Send(ctx context.Context, msg *message.Outbound) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransportSend, err)
	}
	m, err := toMsg(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransportSend, err)
	}
	if err := c.client.Send(m); err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransportSend, err)
	}
	return nil
}

func (c *smtpConn) Close() error {
	return c.client.Close()
}

// toMsg converts the builder's output into a go-mail message: plain text
// alone, or multipart/alternative with the HTML part second.
func toMsg(out *message.Outbound) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(out.From.Name, out.From.Address); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := m.To(out.To); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if err := m.ReplyTo(out.ReplyTo); err != nil {
		return nil, fmt.Errorf("reply-to: %w", err)
	}
	m.Subject(out.Subject)
	m.SetMessageIDWithValue(out.MessageID)
	m.SetDateWithValue(out.Date)

	m.SetBodyString(mail.TypeTextPlain, out.PlainBody)
	if out.IsMultipart() {
		m.AddAlternativeString(mail.TypeTextHTML, out.HTMLBody)
	}
	return m, nil
}
