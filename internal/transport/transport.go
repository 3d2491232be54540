// Package transport delivers built messages. A Dialer opens an authenticated
// session (Conn) that is reused serially for every message of one operation
// and closed by the caller when the operation ends.
package transport

import (
	"context"
	"io"

	"github.com/dmitrijs2005/mailadmin/internal/message"
)

type Dialer interface {
	// Dial opens a session. Errors wrap common.ErrTransportConnect.
	Dial(ctx context.Context) (Conn, error)
}

type Conn interface {
	// Send submits one message. Errors wrap common.ErrTransportSend and
	// leave the session usable for the next message where the relay allows.
	Send(ctx context.Context, msg *message.Outbound) error
	io.Closer
}
