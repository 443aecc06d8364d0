package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"smart-tracking/internal/usecase"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Shipment *ShipmentHandler
	Courier  *CourierHandler
	OTP      *DeliveryOtpHandler
	Notify   *NotifyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Shipment: NewShipmentHandler(service.Shipment, log),
		Courier:  NewCourierHandler(service.Shipment, log),
		OTP:      NewDeliveryOtpHandler(service.DeliveryOTP, log),
		Notify:   NewNotifyHandler(service.Notify, log),
	}
}

// handleServiceError memetakan error service ke HTTP status.
// Sentinel errors dulu, sisanya pakai pesan.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrShipmentNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())
		return

	case errors.Is(err, usecase.ErrInvalidOTP):
		log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return

	case errors.Is(err, usecase.ErrBadTransition):
		log.Warn(operation+" failed - bad transition", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cannot be empty"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "failed to send"):
		log.Error(operation+" failed - notification error", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
