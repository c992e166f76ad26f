package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/jordan-wright/email"

	"brightline/internal/config"
	"brightline/internal/validation"
)

type captureSender struct {
	sent *email.Email
	err  error
}

func (s *captureSender) Send(e *email.Email) error {
	s.sent = e
	return s.err
}

var testCfg = config.SMTPConfig{
	Host: "smtp.example.com",
	Port: 587,
	From: "noreply@example.com",
	To:   "ops@example.com",
}

func TestSendContactNotification(t *testing.T) {
	sender := &captureSender{}
	m := NewWithSender(testCfg, sender)

	sub := validation.ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello there",
	}
	if err := m.SendContactNotification(sub, "1.2.3.4"); err != nil {
		t.Fatal(err)
	}

	e := sender.sent
	if e == nil {
		t.Fatal("expected a message to be sent")
	}
	if e.Subject != "New contact from Alice" {
		t.Errorf("unexpected subject %q", e.Subject)
	}
	if len(e.To) != 1 || e.To[0] != "ops@example.com" {
		t.Errorf("unexpected recipients %v", e.To)
	}
	if len(e.ReplyTo) != 1 || e.ReplyTo[0] != "alice@example.com" {
		t.Errorf("expected reply-to set to submitter, got %v", e.ReplyTo)
	}
	if !strings.Contains(string(e.Text), "Hello there") {
		t.Errorf("text body missing message: %q", e.Text)
	}
	if !strings.Contains(string(e.Text), "IP: 1.2.3.4") {
		t.Errorf("text body missing IP: %q", e.Text)
	}
	if !strings.Contains(string(e.HTML), "Hello there") {
		t.Errorf("html body missing message: %q", e.HTML)
	}
}

// User content must not be able to inject markup into the HTML body.
func TestSendContactNotificationEscapesHTML(t *testing.T) {
	sender := &captureSender{}
	m := NewWithSender(testCfg, sender)

	sub := validation.ContactSubmission{
		Name:    `<b>Bold</b> "Name"`,
		Email:   "alice@example.com",
		Message: `<script>alert('x')</script> & more`,
	}
	if err := m.SendContactNotification(sub, "1.2.3.4"); err != nil {
		t.Fatal(err)
	}

	body := string(sender.sent.HTML)
	for _, raw := range []string{"<script>", "<b>Bold</b>"} {
		if strings.Contains(body, raw) {
			t.Errorf("html body contains unescaped %q", raw)
		}
	}
	for _, escaped := range []string{"&lt;script&gt;", "&amp; more", "&#34;Name&#34;"} {
		if !strings.Contains(body, escaped) {
			t.Errorf("html body missing escaped %q: %s", escaped, body)
		}
	}
}

func TestSendContactNotificationEmptyMessage(t *testing.T) {
	sender := &captureSender{}
	m := NewWithSender(testCfg, sender)

	sub := validation.ContactSubmission{Name: "Alice", Email: "alice@example.com"}
	if err := m.SendContactNotification(sub, "1.2.3.4"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(sender.sent.Text), "(none)") {
		t.Errorf("expected (none) placeholder, got %q", sender.sent.Text)
	}
}

func TestSendContactNotificationTransportError(t *testing.T) {
	sender := &captureSender{err: errors.New("connection refused")}
	m := NewWithSender(testCfg, sender)

	sub := validation.ContactSubmission{Name: "Alice", Email: "alice@example.com"}
	if err := m.SendContactNotification(sub, "1.2.3.4"); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}
