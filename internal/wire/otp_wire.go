package wire

import (
	"smart-tracking/internal/adaptor"
	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/data/repository"
	"smart-tracking/pkg/middleware"
	"smart-tracking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOTP(
	r chi.Router,
	otpHandler *adaptor.DeliveryOtpHandler,
	notifyHandler *adaptor.NotifyHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== OTP ROUTES ====================
	// Issue hanya oleh petugas; verify terbuka untuk penerima paket
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.RequireRole(log, entity.RoleHandler, entity.RoleAdmin),
	).Post("/api/shipment/otp/{shipmentId}", otpHandler.IssueOTP)

	r.Post("/api/shipment/otp/verify/{shipmentId}", otpHandler.VerifyOTP)

	// ==================== NOTIFICATION TEST ROUTES ====================
	r.Route("/api/notify", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Post("/test-email", notifyHandler.SendTestEmail) // POST /api/notify/test-email
		r.Post("/test-sms", notifyHandler.SendTestSms)     // POST /api/notify/test-sms
	})
}
