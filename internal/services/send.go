package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/dmitrijs2005/mailadmin/internal/recipients"
	"github.com/dmitrijs2005/mailadmin/internal/repositories/users"
	"github.com/dmitrijs2005/mailadmin/internal/transport"
	"github.com/dmitrijs2005/mailadmin/internal/validate"
)

type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// ItemResult is the outcome of one recipient. Index is 1-based.
type ItemResult struct {
	Index     int
	Total     int
	Username  string
	Email     string
	Status    Status
	Reason    string
	MessageID string
}

// Report accumulates a bulk operation. Attempted counts messages handed to
// the transport (Sent + Failed); skipped recipients never reach it.
type Report struct {
	Attempted int
	Sent      int
	Skipped   int
	Failed    int
	Items     []ItemResult
	// Canceled is set when the context ended before the list was exhausted.
	Canceled bool
}

func (r *Report) add(res ItemResult) {
	r.Items = append(r.Items, res)
	switch res.Status {
	case StatusSent:
		r.Attempted++
		r.Sent++
	case StatusFailed:
		r.Attempted++
		r.Failed++
	case StatusSkipped:
		r.Skipped++
	}
}

// Observer is called after every recipient, in order, so the shell can show
// progress while a long list is running. It may be nil.
type Observer func(ItemResult)

// SendService defines the three send modes.
//
// Contract:
//   - A bulk operation dials once, reuses the session for each message and
//     closes it exactly once before returning.
//   - A dial failure aborts the operation with common.ErrTransportConnect and
//     nothing is sent.
//   - A per-message failure is recorded in the report and the loop goes on.
//   - BulkDelay is waited after every send attempt except the last one.
type SendService interface {
	SendToUser(ctx context.Context, records []users.Record, username string) (ItemResult, error)
	SendToAll(ctx context.Context, records []users.Record, observe Observer) (Report, error)
	SendBatch(ctx context.Context, entries []recipients.Entry, observe Observer) (Report, error)
}

type recipient struct {
	username string
	email    string
}

type sendService struct {
	dialer    transport.Dialer
	builder   *message.Builder
	validator *validate.Validator
	logger    logging.Logger
	delay     time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewSendService wires the driver. delay is the pause between bulk sends.
func NewSendService(d transport.Dialer, b *message.Builder, v *validate.Validator, logger logging.Logger, delay time.Duration) SendService {
	return &sendService{
		dialer:    d,
		builder:   b,
		validator: v,
		logger:    logger,
		delay:     delay,
		sleep:     sleepContext,
	}
}

// SendToUser sends the welcome message to one stored user. It returns
// common.ErrNotFound or common.ErrInvalidRecipient before dialing; a failed
// send comes back as a StatusFailed result together with the send error.
func (s *sendService) SendToUser(ctx context.Context, records []users.Record, username string) (ItemResult, error) {
	_, rec := users.Find(records, username)
	if rec == nil {
		return ItemResult{}, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	email := strings.TrimSpace(rec.Email)
	if !s.validator.IsValidAddress(email) {
		return ItemResult{Index: 1, Total: 1, Username: username, Email: email, Status: StatusSkipped, Reason: "invalid address"},
			fmt.Errorf("%q: %w", email, common.ErrInvalidRecipient)
	}

	conn, err := s.dialer.Dial(ctx)
	if err != nil {
		s.logger.Error(ctx, "transport connect failed", "error", err)
		return ItemResult{}, err
	}
	defer s.closeConn(ctx, conn)

	res, sendErr := s.deliver(ctx, conn, recipient{username: username, email: email}, 1, 1)
	return res, sendErr
}

func (s *sendService) SendToAll(ctx context.Context, records []users.Record, observe Observer) (Report, error) {
	list := make([]recipient, 0, len(records))
	for _, r := range records {
		list = append(list, recipient{username: r.Username, email: r.Email})
	}
	return s.run(ctx, "send_all", list, observe)
}

func (s *sendService) SendBatch(ctx context.Context, entries []recipients.Entry, observe Observer) (Report, error) {
	list := make([]recipient, 0, len(entries))
	for _, e := range entries {
		list = append(list, recipient{username: e.Username, email: e.Email})
	}
	return s.run(ctx, "send_batch", list, observe)
}

func (s *sendService) run(ctx context.Context, op string, list []recipient, observe Observer) (Report, error) {
	logger := s.logger.With("op", op)
	report := Report{Items: make([]ItemResult, 0, len(list))}
	if len(list) == 0 {
		return report, nil
	}

	conn, err := s.dialer.Dial(ctx)
	if err != nil {
		logger.Error(ctx, "transport connect failed", "error", err)
		return report, err
	}
	defer s.closeConn(ctx, conn)

	total := len(list)
	for i, rcpt := range list {
		if ctx.Err() != nil {
			report.Canceled = true
			break
		}

		res, _ := s.deliver(ctx, conn, rcpt, i+1, total)
		report.add(res)
		if observe != nil {
			observe(res)
		}

		if res.Status == StatusSkipped || i == total-1 {
			continue
		}
		if err := s.sleep(ctx, s.delay); err != nil {
			report.Canceled = true
			break
		}
	}

	logger.Info(ctx, "bulk send finished",
		"sent", report.Sent, "skipped", report.Skipped, "failed", report.Failed, "canceled", report.Canceled)
	return report, nil
}

// deliver validates, builds and sends one message over conn.
func (s *sendService) deliver(ctx context.Context, conn transport.Conn, r recipient, index, total int) (ItemResult, error) {
	email := strings.TrimSpace(r.email)
	res := ItemResult{Index: index, Total: total, Username: r.username, Email: email}

	if !s.validator.IsValidAddress(email) {
		res.Status = StatusSkipped
		res.Reason = "invalid address"
		s.logger.Warn(ctx, "recipient skipped", "username", r.username, "email", email, "reason", res.Reason)
		return res, nil
	}

	msg := s.builder.Build(ctx, email, r.username, message.WelcomeHTML)
	res.MessageID = msg.MessageID

	if err := conn.Send(ctx, msg); err != nil {
		res.Status = StatusFailed
		res.Reason = err.Error()
		s.logger.Error(ctx, "send failed", "to", email, "message_id", msg.MessageID, "reason", res.Reason)
		return res, err
	}

	res.Status = StatusSent
	s.logger.Info(ctx, "message sent", "to", email, "message_id", msg.MessageID, "multipart", msg.IsMultipart())
	return res, nil
}

// closeConn releases the session; a failed close is logged, not returned.
func (s *sendService) closeConn(ctx context.Context, conn transport.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.Warn(ctx, "transport close failed", "error", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsConnectError reports whether err aborted a whole operation.
func IsConnectError(err error) bool {
	return errors.Is(err, common.ErrTransportConnect)
}
