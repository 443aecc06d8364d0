package repository

import (
	"smart-tracking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Shipment    ShipmentRepository
	DeliveryOTP DeliveryOtpRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Shipment:    NewShipmentRepository(db, log),
		DeliveryOTP: NewDeliveryOtpRepository(db, log),
	}
}
