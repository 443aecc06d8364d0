package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-tracking/pkg/notifier"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

// NotifyService adalah endpoint diagnostik untuk admin: kirim OTP tes
// lewat satu channel. Ini SATU-SATUNYA tempat error channel diteruskan
// ke caller; jalur issuance tetap menelan error notifikasi.
type NotifyService interface {
	SendTestEmail(ctx context.Context, email string) (string, error)
	SendTestSms(ctx context.Context, phone string) (string, error)
}

type notifyService struct {
	email  notifier.EmailChannel
	sms    notifier.SmsChannel
	config *utils.Config
	log    *zap.Logger
}

func NewNotifyService(
	email notifier.EmailChannel,
	sms notifier.SmsChannel,
	config *utils.Config,
	log *zap.Logger,
) NotifyService {
	return &notifyService{
		email:  email,
		sms:    sms,
		config: config,
		log:    log.With(zap.String("service", "notify")),
	}
}

func (s *notifyService) SendTestEmail(ctx context.Context, email string) (string, error) {
	code := utils.GenerateOTP(s.config.OTP.Length)

	sendCtx, cancel := s.sendContext(ctx)
	defer cancel()

	subject := "SmartTracking - Test OTP"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h1>SmartTracking</h1>
			<h2>Your Test OTP Code</h2>
			<div style='font-size: 32px; font-weight: bold; letter-spacing: 5px;'>%s</div>
			<p>This is a test OTP. If you didn't request this, please ignore this email.</p>
		</body>
		</html>`, code)

	if err := s.email.Send(sendCtx, email, subject, body); err != nil {
		s.log.Error("Test email failed", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return code, nil
}

func (s *notifyService) SendTestSms(ctx context.Context, phone string) (string, error) {
	code := utils.GenerateOTP(s.config.OTP.Length)

	sendCtx, cancel := s.sendContext(ctx)
	defer cancel()

	message := fmt.Sprintf("SmartTracking: Your test OTP is: %s. Do not share with anyone.", code)

	if err := s.sms.Send(sendCtx, phone, message); err != nil {
		s.log.Error("Test SMS failed", zap.Error(err), zap.String("phone", phone))
		return "", fmt.Errorf("failed to send SMS: %w", err)
	}

	return code, nil
}

func (s *notifyService) sendContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.config.OTP.SendTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
