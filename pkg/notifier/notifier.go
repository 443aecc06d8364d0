package notifier

import (
	"context"

	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

// EmailChannel mengirim email ke satu penerima. Caller yang menentukan
// apakah error boleh diabaikan; channel sendiri tidak menelan error.
type EmailChannel interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SmsChannel mengirim SMS ke satu nomor.
type SmsChannel interface {
	Send(ctx context.Context, phone, message string) error
}

// NewEmailChannel memilih implementasi berdasarkan config, bukan
// fallback diam-diam saat konstruktor gagal.
func NewEmailChannel(config utils.EmailConfig, log *zap.Logger) EmailChannel {
	switch config.Driver {
	case "smtp":
		return newSMTPEmail(config, log)
	default:
		return &logEmail{log: log.With(zap.String("channel", "email"))}
	}
}

func NewSmsChannel(config utils.SMSConfig, log *zap.Logger) SmsChannel {
	switch config.Driver {
	case "http":
		return newHTTPSms(config, log)
	default:
		return &logSms{log: log.With(zap.String("channel", "sms"))}
	}
}

// logEmail hanya menulis ke log, dipakai di development
type logEmail struct {
	log *zap.Logger
}

func (c *logEmail) Send(_ context.Context, to, subject, _ string) error {
	c.log.Info("Email (log driver)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

type logSms struct {
	log *zap.Logger
}

func (c *logSms) Send(_ context.Context, phone, message string) error {
	c.log.Info("SMS (log driver)",
		zap.String("phone", phone),
		zap.String("message", message),
	)
	return nil
}
