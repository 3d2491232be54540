package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/dmitrijs2005/mailadmin/internal/transport"
	"github.com/dmitrijs2005/mailadmin/internal/validate"
)

// ---- fake transport ----

type fakeConn struct {
	// failOn lists 1-based attempt numbers that return an error.
	failOn   map[int]bool
	closeErr error

	attempts int
	closes   int
	sent     []*message.Outbound
}

func (c *fakeConn) Send(ctx context.Context, msg *message.Outbound) error {
	c.attempts++
	if c.failOn[c.attempts] {
		return fmt.Errorf("%w: 451 try later", common.ErrTransportSend)
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *fakeConn) Close() error {
	c.closes++
	return c.closeErr
}

type fakeDialer struct {
	conn    *fakeConn
	dialErr error
	dials   int
}

func (d *fakeDialer) Dial(ctx context.Context) (transport.Conn, error) {
	d.dials++
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.conn, nil
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{conn: &fakeConn{failOn: map[int]bool{}}}
}

var errRefused = errors.New("connection refused")

// ---- service under test ----

type recordedSleep struct {
	calls []time.Duration
	err   error
}

func (r *recordedSleep) sleep(ctx context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return r.err
}

func newSendService(d transport.Dialer, delay time.Duration) (*sendService, *recordedSleep) {
	b := message.NewBuilder(message.Identity{Name: "Admin Team", Address: "admin@gmail.com"}, nil, logging.Discard())
	svc := NewSendService(d, b, validate.New(validate.DefaultDomain), logging.Discard(), delay).(*sendService)
	rs := &recordedSleep{}
	svc.sleep = rs.sleep
	return svc, rs
}
