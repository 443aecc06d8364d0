package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/data/repository"
	"smart-tracking/internal/dto/request"
	"smart-tracking/internal/dto/response"
	"smart-tracking/pkg/notifier"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

type ShipmentService interface {
	CreateShipment(ctx context.Context, req *request.CreateShipmentRequest) (*response.ShipmentResponse, error)
	GetShipment(ctx context.Context, id int64) (*response.ShipmentResponse, error)
	GetShipmentByTrackingID(ctx context.Context, trackingID string) (*response.ShipmentResponse, error)
	GetShipmentsByUser(ctx context.Context, userID int64) ([]*response.ShipmentResponse, error)
	GetAllShipments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[*response.ShipmentResponse], error)
	UpdateShipment(ctx context.Context, id int64, req *request.UpdateShipmentRequest) (*response.ShipmentResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *request.ShipmentStatusUpdateRequest) (*response.ShipmentResponse, error)
	DeleteShipment(ctx context.Context, id int64) error

	// Handler dashboard
	GetShipmentsForReview(ctx context.Context) ([]*response.ShipmentResponse, error)
	GetInTransitShipments(ctx context.Context) ([]*response.ShipmentResponse, error)
	MarkDelivered(ctx context.Context, id int64, req *request.DeliveryConfirmationRequest) (*response.ShipmentResponse, error)
}

type shipmentService struct {
	repo   *repository.Repository
	email  notifier.EmailChannel
	sms    notifier.SmsChannel
	config *utils.Config
	log    *zap.Logger
}

func NewShipmentService(
	repo *repository.Repository,
	email notifier.EmailChannel,
	sms notifier.SmsChannel,
	config *utils.Config,
	log *zap.Logger,
) ShipmentService {
	return &shipmentService{
		repo:   repo,
		email:  email,
		sms:    sms,
		config: config,
		log:    log.With(zap.String("service", "shipment")),
	}
}

func (s *shipmentService) CreateShipment(ctx context.Context, req *request.CreateShipmentRequest) (*response.ShipmentResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create shipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. User pemilik harus ada
	user, err := s.repo.User.FindByID(ctx, req.UserID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.Int64("user_id", req.UserID))
		return nil, fmt.Errorf("failed to check user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 3. Buat shipment; tracking ID digenerate sekali, immutable
	shipment := &entity.Shipment{
		BaseSimple: entity.BaseSimple{
			CreatedAt: time.Now(),
		},
		TrackingID:          utils.GenerateTrackingID(),
		UserID:              user.ID,
		UserEmail:           user.Email, // denormalized untuk notifikasi
		RecipientName:       req.RecipientName,
		DeliveryAddress:     req.DeliveryAddress,
		CurrentAddress:      req.CurrentAddress,
		PackageType:         req.PackageType,
		Weight:              req.Weight,
		SpecialInstructions: req.SpecialInstructions,
		Photo:               req.Photo,
		Status:              entity.StatusPending,
	}

	if err := s.repo.Shipment.Create(ctx, shipment); err != nil {
		s.log.Error("Failed to create shipment", zap.Error(err))
		return nil, fmt.Errorf("failed to create shipment")
	}

	s.log.Info("Shipment registered",
		zap.Int64("shipment_id", shipment.ID),
		zap.String("tracking_id", shipment.TrackingID),
		zap.Int64("user_id", user.ID),
	)

	// 4. Konfirmasi registrasi, best effort
	go s.sendRegistrationNotifications(shipment, user)

	return response.ShipmentToResponse(shipment), nil
}

func (s *shipmentService) GetShipment(ctx context.Context, id int64) (*response.ShipmentResponse, error) {
	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shipment", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	return response.ShipmentToResponse(shipment), nil
}

func (s *shipmentService) GetShipmentByTrackingID(ctx context.Context, trackingID string) (*response.ShipmentResponse, error) {
	if trackingID == "" {
		return nil, fmt.Errorf("tracking ID cannot be empty")
	}

	shipment, err := s.repo.Shipment.FindByTrackingID(ctx, trackingID)
	if err != nil {
		s.log.Error("Failed to get shipment by tracking ID", zap.Error(err), zap.String("tracking_id", trackingID))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	return response.ShipmentToResponse(shipment), nil
}

func (s *shipmentService) GetShipmentsByUser(ctx context.Context, userID int64) ([]*response.ShipmentResponse, error) {
	shipments, err := s.repo.Shipment.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user shipments", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get shipments")
	}

	return response.ShipmentsToResponse(shipments), nil
}

func (s *shipmentService) GetAllShipments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[*response.ShipmentResponse], error) {
	shipments, err := s.repo.Shipment.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all shipments", zap.Error(err))
		return nil, fmt.Errorf("failed to get shipments")
	}

	total, err := s.repo.Shipment.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count shipments", zap.Error(err))
		return nil, fmt.Errorf("failed to count shipments")
	}

	return response.NewPaginatedResponse(response.ShipmentsToResponse(shipments), req.Page, req.Limit(), total), nil
}

func (s *shipmentService) UpdateShipment(ctx context.Context, id int64, req *request.UpdateShipmentRequest) (*response.ShipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shipment for update", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	shipment.RecipientName = req.RecipientName
	shipment.DeliveryAddress = req.DeliveryAddress
	shipment.CurrentAddress = req.CurrentAddress
	shipment.PackageType = req.PackageType
	shipment.Weight = req.Weight
	shipment.SpecialInstructions = req.SpecialInstructions
	shipment.Photo = req.Photo

	if err := s.repo.Shipment.Update(ctx, shipment); err != nil {
		s.log.Error("Failed to update shipment", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to update shipment")
	}

	return response.ShipmentToResponse(shipment), nil
}

func (s *shipmentService) UpdateStatus(ctx context.Context, id int64, req *request.ShipmentStatusUpdateRequest) (*response.ShipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shipment for status update", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	next := entity.ShipmentStatus(req.Status)
	if !shipment.CanTransitionTo(next) {
		s.log.Warn("Rejected status transition",
			zap.Int64("shipment_id", id),
			zap.String("from", string(shipment.Status)),
			zap.String("to", string(next)),
		)
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, shipment.Status, next)
	}

	if err := s.repo.Shipment.UpdateStatus(ctx, id, next, req.CurrentAddress); err != nil {
		s.log.Error("Failed to update shipment status", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to update status")
	}

	s.log.Info("Shipment status updated",
		zap.Int64("shipment_id", id),
		zap.String("from", string(shipment.Status)),
		zap.String("to", string(next)),
	)

	shipment.Status = next
	if req.CurrentAddress != nil {
		shipment.CurrentAddress = *req.CurrentAddress
	}

	return response.ShipmentToResponse(shipment), nil
}

func (s *shipmentService) DeleteShipment(ctx context.Context, id int64) error {
	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shipment for delete", zap.Error(err), zap.Int64("shipment_id", id))
		return fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return ErrShipmentNotFound
	}

	if err := s.repo.Shipment.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete shipment", zap.Error(err), zap.Int64("shipment_id", id))
		return fmt.Errorf("failed to delete shipment")
	}

	s.log.Info("Shipment deleted",
		zap.Int64("shipment_id", id),
		zap.String("tracking_id", shipment.TrackingID),
	)
	return nil
}

// ==================== HANDLER DASHBOARD ====================

func (s *shipmentService) GetShipmentsForReview(ctx context.Context) ([]*response.ShipmentResponse, error) {
	shipments, err := s.repo.Shipment.FindAll(ctx, 200, 0)
	if err != nil {
		s.log.Error("Failed to get shipments for review", zap.Error(err))
		return nil, fmt.Errorf("failed to get shipments")
	}

	return response.ShipmentsToResponse(shipments), nil
}

func (s *shipmentService) GetInTransitShipments(ctx context.Context) ([]*response.ShipmentResponse, error) {
	shipments, err := s.repo.Shipment.FindByStatus(ctx, entity.StatusInTransit)
	if err != nil {
		s.log.Error("Failed to get in-transit shipments", zap.Error(err))
		return nil, fmt.Errorf("failed to get shipments")
	}

	return response.ShipmentsToResponse(shipments), nil
}

// MarkDelivered adalah override manual oleh handler, tanpa OTP
func (s *shipmentService) MarkDelivered(ctx context.Context, id int64, req *request.DeliveryConfirmationRequest) (*response.ShipmentResponse, error) {
	shipment, err := s.repo.Shipment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shipment for delivery", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to get shipment")
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	if shipment.Status == entity.StatusDelivered {
		return nil, fmt.Errorf("%w: already delivered", ErrBadTransition)
	}

	if err := s.repo.Shipment.UpdateStatus(ctx, id, entity.StatusDelivered, req.DeliveryAddress); err != nil {
		s.log.Error("Failed to mark shipment delivered", zap.Error(err), zap.Int64("shipment_id", id))
		return nil, fmt.Errorf("failed to mark delivered")
	}

	s.log.Info("Shipment marked delivered by handler",
		zap.Int64("shipment_id", id),
		zap.String("tracking_id", shipment.TrackingID),
	)

	shipment.Status = entity.StatusDelivered
	if req.DeliveryAddress != nil {
		shipment.CurrentAddress = *req.DeliveryAddress
	}

	return response.ShipmentToResponse(shipment), nil
}

// sendRegistrationNotifications: pola isolasi yang sama dengan OTP —
// tiap channel best effort, gagal cuma dicatat di log.
func (s *shipmentService) sendRegistrationNotifications(shipment *entity.Shipment, user *entity.User) {
	timeout := time.Duration(s.config.OTP.SendTimeoutSeconds) * time.Second

	emailCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	subject := "Parcel Registration Confirmation"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Parcel Has Been Registered</h2>
			<p>Dear %s,</p>
			<p>Your parcel has been successfully registered in our system.</p>
			<p><strong>Tracking ID:</strong> %s</p>
			<p><strong>Recipient:</strong> %s</p>
			<p><strong>Delivery Address:</strong> %s</p>
			<p>You can track your parcel status using the tracking ID above.</p>
		</body>
		</html>`,
		user.FirstName, shipment.TrackingID, shipment.RecipientName, shipment.DeliveryAddress,
	)

	if err := s.email.Send(emailCtx, user.Email, subject, body); err != nil {
		s.log.Warn("Registration email notification failed",
			zap.Error(err),
			zap.String("tracking_id", shipment.TrackingID),
		)
	}

	if !user.HasPhone() {
		s.log.Debug("No phone number on file, skipping registration SMS",
			zap.Int64("user_id", user.ID))
		return
	}

	smsCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	message := fmt.Sprintf("Your parcel has been registered. Tracking ID: %s", shipment.TrackingID)
	if err := s.sms.Send(smsCtx, *user.Phone, message); err != nil {
		s.log.Warn("Registration SMS notification failed",
			zap.Error(err),
			zap.String("tracking_id", shipment.TrackingID),
		)
	}
}
