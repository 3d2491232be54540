package transport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mailadmin/internal/common"
	"github.com/dmitrijs2005/mailadmin/internal/logging"
	"github.com/dmitrijs2005/mailadmin/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(html string) *message.Outbound {
	return &message.Outbound{
		From:      message.Identity{Name: "Admin Team", Address: "admin@gmail.com"},
		To:        "alice@gmail.com",
		ReplyTo:   "admin@gmail.com",
		Subject:   "Welcome to the system",
		PlainBody: "Hello mr alice",
		HTMLBody:  html,
		MessageID: "abc-123@gmail.com",
		Date:      time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestToMsg_PlainText(t *testing.T) {
	m, err := toMsg(sample(""))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "Subject: Welcome to the system")
	assert.Contains(t, raw, "<alice@gmail.com>")
	assert.Contains(t, raw, "Reply-To: <admin@gmail.com>")
	assert.Contains(t, raw, "Message-ID: <abc-123@gmail.com>")
	assert.Contains(t, raw, "Hello mr alice")
	assert.NotContains(t, raw, "multipart/alternative")
}

func TestToMsg_Alternative(t *testing.T) {
	m, err := toMsg(sample("<p>Hi alice</p>"))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Less(t, strings.Index(raw, "text/plain"), strings.Index(raw, "text/html"))
}

func TestToMsg_BadRecipient(t *testing.T) {
	out := sample("")
	out.To = "not an address"
	_, err := toMsg(out)
	assert.Error(t, err)
}

func TestSMTPDialer_ConnectRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	d := NewSMTPDialer(SMTPConfig{
		Host: "127.0.0.1", Port: port,
		Username: "u", Password: "p",
		Timeout: 2 * time.Second,
	})

	_, err = d.Dial(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTransportConnect))
}

func TestSMTPDialer_EmptyHost(t *testing.T) {
	_, err := NewSMTPDialer(SMTPConfig{Port: 587, Timeout: time.Second}).Dial(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTransportConnect))
}

func TestLogDialer_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	conn, err := NewLogDialer(logger).Dial(ctx)
	require.NoError(t, err)
	require.NoError(t, conn.Send(ctx, sample("<p>x</p>")))
	require.NoError(t, conn.Close())

	out := buf.String()
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "To=alice@gmail.com")
	assert.Contains(t, out, "multipart=true")
}
