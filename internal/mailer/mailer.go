package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"net"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"

	"brightline/internal/config"
	"brightline/internal/validation"
)

// Sender delivers a composed message. Split out so tests can capture the
// message instead of talking SMTP.
type Sender interface {
	Send(e *email.Email) error
}

type smtpSender struct {
	cfg config.SMTPConfig
}

func (s *smtpSender) Send(e *email.Email) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)

	if s.cfg.Secure {
		return e.SendWithTLS(addr, auth, &tls.Config{ServerName: s.cfg.Host})
	}
	return e.Send(addr, auth)
}

// Mailer composes and sends operator notifications for contact submissions.
type Mailer struct {
	cfg    config.SMTPConfig
	sender Sender
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, sender: &smtpSender{cfg: cfg}}
}

// NewWithSender is used by tests to substitute the transport.
func NewWithSender(cfg config.SMTPConfig, sender Sender) *Mailer {
	return &Mailer{cfg: cfg, sender: sender}
}

// SendContactNotification composes the operator notification for one contact
// submission and hands it to the transport. No retries: a failure is
// reported to the caller and abandoned.
func (m *Mailer) SendContactNotification(sub validation.ContactSubmission, ip string) error {
	msg := sub.Message
	if msg == "" {
		msg = "(none)"
	}

	text := fmt.Sprintf(`New contact form submission

Name: %s
Email: %s

Message:
%s

IP: %s`, sub.Name, sub.Email, msg, ip)

	// All user-supplied content goes through html.EscapeString so a
	// submission can't inject markup into the operator's mail client.
	htmlBody := fmt.Sprintf(`<div style="font-family:system-ui,sans-serif;line-height:1.55;color:#0f172a">
<h2 style="margin:0 0 .5rem">New contact form submission</h2>
<table cellpadding="6" cellspacing="0" style="border-collapse:collapse;background:#f8fafc;border:1px solid #e2e8f0">
<tbody>
<tr><td><strong>Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
</tbody>
</table>
<h3 style="margin-top:1rem">Message</h3>
<div style="white-space:pre-wrap;border:1px solid #e2e8f0;background:#fff;padding:.75rem">%s</div>
<p style="margin-top:1rem;color:#475569"><em>IP: %s</em></p>
</div>`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(msg),
		html.EscapeString(ip),
	)

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{m.cfg.To}
	e.ReplyTo = []string{sub.Email}
	e.Subject = fmt.Sprintf("New contact from %s", sub.Name)
	e.Text = []byte(text)
	e.HTML = []byte(htmlBody)

	return m.sender.Send(e)
}

// Verify dials the SMTP host once to confirm connectivity. Run at startup;
// the caller logs a failure and continues, it never blocks serving.
func (m *Mailer) Verify(ctx context.Context) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	if m.cfg.Secure {
		conn = tls.Client(conn, &tls.Config{ServerName: m.cfg.Host})
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	return client.Quit()
}
