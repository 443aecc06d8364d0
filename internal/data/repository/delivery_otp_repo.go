package repository

import (
	"context"
	"fmt"

	"smart-tracking/internal/data/entity"
	"smart-tracking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DeliveryOtpRepository interface {
	Create(ctx context.Context, otp *entity.DeliveryOtp) error
	FindUnusedMatch(ctx context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error)
	// Consume marks a matching unused OTP as used and flips the shipment to
	// Delivered in one transaction. Returns (nil, nil) when no eligible row
	// exists; callers must not learn which sub-case failed.
	Consume(ctx context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error)
}

type deliveryOtpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeliveryOtpRepository(db database.PgxIface, log *zap.Logger) DeliveryOtpRepository {
	return &deliveryOtpRepository{
		db:  db,
		log: log.With(zap.String("repository", "delivery_otp")),
	}
}

func (r *deliveryOtpRepository) Create(ctx context.Context, otp *entity.DeliveryOtp) error {
	query := `
		INSERT INTO delivery_otps (shipment_id, otp_code, is_used, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		otp.ShipmentID,
		otp.OTPCode,
		otp.IsUsed,
		otp.CreatedAt,
	).Scan(&otp.ID)

	if err != nil {
		r.log.Error("Failed to create delivery OTP",
			zap.Error(err),
			zap.Int64("shipment_id", otp.ShipmentID),
		)
		return fmt.Errorf("create delivery OTP for shipment %d: %w", otp.ShipmentID, err)
	}

	return nil
}

func (r *deliveryOtpRepository) FindUnusedMatch(ctx context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error) {
	query := `
		SELECT id, shipment_id, otp_code, is_used, used_at, created_at
		FROM delivery_otps
		WHERE shipment_id = $1
		  AND otp_code = $2
		  AND is_used = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.DeliveryOtp
	err := r.db.QueryRow(ctx, query, shipmentID, code).Scan(
		&otp.ID,
		&otp.ShipmentID,
		&otp.OTPCode,
		&otp.IsUsed,
		&otp.UsedAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find delivery OTP",
			zap.Error(err),
			zap.Int64("shipment_id", shipmentID),
		)
		return nil, fmt.Errorf("find delivery OTP for shipment %d: %w", shipmentID, err)
	}

	return &otp, nil
}

func (r *deliveryOtpRepository) Consume(ctx context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin consume transaction", zap.Error(err))
		return nil, fmt.Errorf("begin consume tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional update: dua request bersamaan dengan kode yang sama
	// hanya satu yang dapat row (is_used = false cuma match sekali).
	query := `
		UPDATE delivery_otps
		SET is_used = true, used_at = NOW()
		WHERE id = (
			SELECT id FROM delivery_otps
			WHERE shipment_id = $1
			  AND otp_code = $2
			  AND is_used = false
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE
		)
		RETURNING id, shipment_id, otp_code, is_used, used_at, created_at
	`

	var otp entity.DeliveryOtp
	err = tx.QueryRow(ctx, query, shipmentID, code).Scan(
		&otp.ID,
		&otp.ShipmentID,
		&otp.OTPCode,
		&otp.IsUsed,
		&otp.UsedAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to consume delivery OTP",
			zap.Error(err),
			zap.Int64("shipment_id", shipmentID),
		)
		return nil, fmt.Errorf("consume delivery OTP for shipment %d: %w", shipmentID, err)
	}

	// Kedua write harus commit bareng atau tidak sama sekali
	_, err = tx.Exec(ctx, `
		UPDATE shipments
		SET status = 'Delivered', delivery_date = NOW()
		WHERE id = $1
	`, shipmentID)
	if err != nil {
		r.log.Error("Failed to mark shipment delivered",
			zap.Error(err),
			zap.Int64("shipment_id", shipmentID),
		)
		return nil, fmt.Errorf("mark shipment %d delivered: %w", shipmentID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit consume tx: %w", err)
	}

	return &otp, nil
}
