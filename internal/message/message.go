// Package message builds outbound mail as plain data. Conversion to a wire
// format is left to the transport, so everything here can be inspected in
// tests without a relay.
package message

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Identity is the fixed sender of every message.
type Identity struct {
	Name    string
	Address string
}

// String renders the identity as an RFC 5322 mailbox.
func (id Identity) String() string {
	return (&mail.Address{Name: id.Name, Address: id.Address}).String()
}

// Domain returns the part after '@', or "localhost" when there is none.
func (id Identity) Domain() string {
	if _, d, ok := strings.Cut(id.Address, "@"); ok && d != "" {
		return d
	}
	return "localhost"
}

// Outbound is a single message ready for one recipient. It is built fresh
// for every send.
type Outbound struct {
	From      Identity
	To        string
	ReplyTo   string
	Subject   string
	PlainBody string
	// HTMLBody is empty for plain-text-only messages.
	HTMLBody string
	// MessageID is the id-left@id-right form, without angle brackets.
	MessageID string
	Date      time.Time
}

// IsMultipart reports whether the message carries an HTML alternative.
func (m *Outbound) IsMultipart() bool {
	return m.HTMLBody != ""
}

// Headers returns the header set in a stable order, for logging and
// dry runs.
func (m *Outbound) Headers() [][2]string {
	return [][2]string{
		{"Subject", m.Subject},
		{"From", m.From.String()},
		{"To", m.To},
		{"Reply-To", m.ReplyTo},
		{"Message-ID", fmt.Sprintf("<%s>", m.MessageID)},
		{"Date", m.Date.Format(time.RFC1123Z)},
	}
}
