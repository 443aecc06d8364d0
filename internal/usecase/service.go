package usecase

import (
	"smart-tracking/internal/data/repository"
	"smart-tracking/pkg/notifier"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Shipment    ShipmentService
	DeliveryOTP DeliveryOtpService
	Notify      NotifyService
}

func NewService(
	repo *repository.Repository,
	email notifier.EmailChannel,
	sms notifier.SmsChannel,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Shipment:    NewShipmentService(repo, email, sms, config, log),
		DeliveryOTP: NewDeliveryOtpService(repo, email, sms, config, log),
		Notify:      NewNotifyService(email, sms, config, log),
	}
}
