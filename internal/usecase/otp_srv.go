package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/data/repository"
	"smart-tracking/internal/dto/response"
	"smart-tracking/pkg/notifier"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

type DeliveryOtpService interface {
	IssueOTP(ctx context.Context, shipmentID int64) (*response.DeliveryOtpResponse, error)
	VerifyOTP(ctx context.Context, shipmentID int64, code string) error
}

type deliveryOtpService struct {
	repo   *repository.Repository
	email  notifier.EmailChannel
	sms    notifier.SmsChannel
	config *utils.Config
	log    *zap.Logger
}

func NewDeliveryOtpService(
	repo *repository.Repository,
	email notifier.EmailChannel,
	sms notifier.SmsChannel,
	config *utils.Config,
	log *zap.Logger,
) DeliveryOtpService {
	return &deliveryOtpService{
		repo:   repo,
		email:  email,
		sms:    sms,
		config: config,
		log:    log.With(zap.String("service", "delivery_otp")),
	}
}

func (s *deliveryOtpService) IssueOTP(ctx context.Context, shipmentID int64) (*response.DeliveryOtpResponse, error) {
	// 1. Cari shipment
	shipment, err := s.repo.Shipment.FindByID(ctx, shipmentID)
	if err != nil {
		s.log.Error("Failed to find shipment for OTP", zap.Error(err), zap.Int64("shipment_id", shipmentID))
		return nil, fmt.Errorf("failed to find shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	// 2. Cari user pemilik (butuh email & phone untuk notifikasi)
	user, err := s.repo.User.FindByID(ctx, shipment.UserID)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.Int64("user_id", shipment.UserID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 3. Generate kode
	code := utils.GenerateOTP(s.config.OTP.Length)

	// 4. Simpan DULU sebelum notifikasi apa pun; issuance tidak
	//    tergantung sukses/gagalnya pengiriman.
	otp := &entity.DeliveryOtp{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		ShipmentID: shipmentID,
		OTPCode:    code,
		IsUsed:     false,
	}

	if err := s.repo.DeliveryOTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save delivery OTP", zap.Error(err), zap.Int64("shipment_id", shipmentID))
		return nil, fmt.Errorf("failed to generate OTP")
	}

	s.log.Info("Delivery OTP issued",
		zap.Int64("otp_id", otp.ID),
		zap.Int64("shipment_id", shipmentID),
		zap.String("tracking_id", shipment.TrackingID),
	)

	// 5. Kirim email + SMS di background
	go s.sendOTPNotifications(shipment, user, code)

	return response.DeliveryOtpToResponse(otp), nil
}

func (s *deliveryOtpService) VerifyOTP(ctx context.Context, shipmentID int64, code string) error {
	otp, err := s.repo.DeliveryOTP.Consume(ctx, shipmentID, code)
	if err != nil {
		s.log.Error("Failed to verify delivery OTP", zap.Error(err), zap.Int64("shipment_id", shipmentID))
		return fmt.Errorf("failed to verify OTP")
	}
	if otp == nil {
		// Salah kode, sudah dipakai, atau shipment tidak ada — satu
		// pesan yang sama untuk semuanya.
		return ErrInvalidOTP
	}

	s.log.Info("Delivery OTP verified, shipment delivered",
		zap.Int64("otp_id", otp.ID),
		zap.Int64("shipment_id", shipmentID),
	)

	return nil
}

// sendOTPNotifications coba email lalu SMS. Tiap channel berdiri sendiri:
// email gagal tidak memblokir SMS, dan kegagalan keduanya tidak pernah
// membatalkan OTP yang sudah tersimpan.
func (s *deliveryOtpService) sendOTPNotifications(shipment *entity.Shipment, user *entity.User, code string) {
	timeout := time.Duration(s.config.OTP.SendTimeoutSeconds) * time.Second

	emailCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	subject := "SmartTracking - Delivery OTP"
	body := buildOTPEmailBody(shipment.RecipientName, shipment.TrackingID, code)

	if err := s.email.Send(emailCtx, shipment.UserEmail, subject, body); err != nil {
		s.log.Warn("OTP email notification failed",
			zap.Error(err),
			zap.Int64("shipment_id", shipment.ID),
			zap.String("tracking_id", shipment.TrackingID),
		)
	}

	if !user.HasPhone() {
		s.log.Debug("No phone number on file, skipping OTP SMS",
			zap.Int64("user_id", user.ID))
		return
	}

	smsCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	message := fmt.Sprintf(
		"SmartTracking: Your delivery OTP for parcel %s is: %s. Do not share this code with anyone.",
		shipment.TrackingID, code,
	)

	if err := s.sms.Send(smsCtx, *user.Phone, message); err != nil {
		s.log.Warn("OTP SMS notification failed",
			zap.Error(err),
			zap.Int64("shipment_id", shipment.ID),
			zap.String("tracking_id", shipment.TrackingID),
		)
	}
}

func buildOTPEmailBody(recipientName, trackingID, code string) string {
	return fmt.Sprintf(`
		<html>
		<body style='font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;'>
			<h1>SmartTracking</h1>
			<h2>Your Delivery OTP Code</h2>
			<p>Hello %s,</p>
			<p>Use the following OTP code to confirm the delivery of your parcel (Tracking ID: %s):</p>
			<div style='font-size: 32px; font-weight: bold; letter-spacing: 5px;'>%s</div>
			<p>Do not share this code with anyone.</p>
		</body>
		</html>`,
		recipientName, trackingID, code,
	)
}
