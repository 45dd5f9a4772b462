package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"go.uber.org/zap"

	"forms-backend/pkg/config"
	"forms-backend/pkg/filestorage"
)

// Notification is an ephemeral value: it exists only for the duration of one
// Send call and is never persisted.
type Notification struct {
	To         string
	Subject    string
	Body       string
	Attachment *filestorage.Attachment
}

type MailerInterface interface {
	Send(ctx context.Context, n Notification) error
}

type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) MailerInterface {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send delivers one message with at most one attachment. Single attempt, no
// retry: transport failures are reported to the caller as-is.
func (m *SMTPMailer) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before sending email: %w", err)
	}

	message, err := m.buildMessage(n)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if m.cfg.UseTLS {
		err = m.sendWithTLS(addr, auth, m.cfg.From, []string{n.To}, message)
	} else {
		err = smtp.SendMail(addr, auth, m.cfg.From, []string{n.To}, message)
	}
	if err != nil {
		return err
	}

	m.logger.Info("notification email sent",
		zap.String("to", n.To),
		zap.String("subject", n.Subject),
	)
	return nil
}

// buildMessage produces a multipart/mixed MIME message: one plaintext part and,
// when present, one base64 attachment part carrying the original filename.
func (m *SMTPMailer) buildMessage(n Notification) ([]byte, error) {
	var builder strings.Builder
	const boundary = "mixed-boundary-4f9d2c"

	builder.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", n.To))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", n.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	builder.WriteString("\r\n")

	builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(n.Body)
	builder.WriteString("\r\n")

	if n.Attachment != nil {
		content, err := os.ReadFile(n.Attachment.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", n.Attachment.Path, err)
		}

		builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		builder.WriteString("Content-Type: application/octet-stream\r\n")
		builder.WriteString("Content-Transfer-Encoding: base64\r\n")
		builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", n.Attachment.OriginalName))
		builder.WriteString("\r\n")
		builder.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(content)))
		builder.WriteString("\r\n")
	}

	builder.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(builder.String()), nil
}

// wrapBase64 folds the encoded body into 76-character lines per RFC 2045.
func wrapBase64(encoded string) string {
	const lineLen = 76
	var builder strings.Builder
	for len(encoded) > lineLen {
		builder.WriteString(encoded[:lineLen])
		builder.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	builder.WriteString(encoded)
	return builder.String()
}

func (m *SMTPMailer) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{ServerName: m.cfg.Host}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
