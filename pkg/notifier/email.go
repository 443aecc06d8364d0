package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

// smtpEmail kirim lewat SMTP implicit TLS (port 465)
type smtpEmail struct {
	host     string
	port     string
	username string
	password string
	from     string
	log      *zap.Logger
}

func newSMTPEmail(config utils.EmailConfig, log *zap.Logger) *smtpEmail {
	from := config.From
	if from == "" {
		from = config.User
	}
	return &smtpEmail{
		host:     config.Host,
		port:     config.Port,
		username: config.User,
		password: config.Password,
		from:     from,
		log:      log.With(zap.String("channel", "email")),
	}
}

func (e *smtpEmail) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", e.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" + // required for HTML
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := e.host + ":" + e.port

	tlsConfig := &tls.Config{
		ServerName: e.host,
	}

	dialer := &tls.Dialer{Config: tlsConfig}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", serverAddr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.username, e.password, e.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(e.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	e.log.Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
