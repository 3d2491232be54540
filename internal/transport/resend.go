package transport

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/resend/resend-go/v2"
)

// emailAPI is the part of the Resend client the transport uses.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendDialer delivers through the Resend HTTP API. There is no session to
// open, so Dial only checks the key and hands out a stateless Conn.
type ResendDialer struct {
	apiKey string
	newAPI func(apiKey string) emailAPI
}

func NewResendDialer(apiKey string) *ResendDialer {
	return &ResendDialer{
		apiKey: apiKey,
		newAPI: func(key string) emailAPI { return resend.NewClient(key).Emails },
	}
}

func (d *ResendDialer) Dial(ctx context.Context) (Conn, error) {
	if d.apiKey == "" {
		return nil, fmt.Errorf("%w: resend api key is not set", common.ErrTransportConnect)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransportConnect, err)
	}
	return &resendConn{api: d.newAPI(d.apiKey)}, nil
}

type resendConn struct {
	api emailAPI
}

func (c *resendConn) Send(ctx context.Context, msg *message.Outbound) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransportSend, err)
	}
	if _, err := c.api.SendWithContext(ctx, toResendRequest(msg)); err != nil {
		return fmt.Errorf("%w: resend: %v", common.ErrTransportSend, err)
	}
	return nil
}

func (c *resendConn) Close() error {
	return nil
}

func toResendRequest(out *message.Outbound) *resend.SendEmailRequest {
	return &resend.SendEmailRequest{
		From:    out.From.String(),
		To:      []string{out.To},
		ReplyTo: out.ReplyTo,
		Subject: out.Subject,
		Text:    out.PlainBody,
		Html:    out.HTMLBody,
		Headers: map[string]string{"Message-ID": "<" + out.MessageID + ">"},
	}
}
