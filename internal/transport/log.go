package transport

import (
	"context"

	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
)

// LogDialer is the dry-run transport: messages are written to the logger
// and nothing leaves the machine.
type LogDialer struct {
	logger logging.Logger
}

func NewLogDialer(logger logging.Logger) *LogDialer {
	return &LogDialer{logger: logger}
}

func (d *LogDialer) Dial(ctx context.Context) (Conn, error) {
	d.logger.Info(ctx, "dry-run session opened")
	return &logConn{logger: d.logger}, nil
}

type logConn struct {
	logger logging.Logger
}

func (c *logConn) Send(ctx context.Context, msg *message.Outbound) error {
	args := make([]any, 0, 16)
	for _, h := range msg.Headers() {
		args = append(args, h[0], h[1])
	}
	args = append(args, "multipart", msg.IsMultipart(), "body", msg.PlainBody)
	c.logger.Info(ctx, "EMAIL (dry run, not sent)", args...)
	return nil
}

func (c *logConn) Close() error {
	return nil
}
