package repository

import (
	"context"
	"fmt"

	"smart-tracking/internal/data/entity"
	"smart-tracking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	FindByID(ctx context.Context, id int64) (*entity.Shipment, error)
	FindByTrackingID(ctx context.Context, trackingID string) (*entity.Shipment, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Shipment, error)
	FindByStatus(ctx context.Context, status entity.ShipmentStatus) ([]*entity.Shipment, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Shipment, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, shipment *entity.Shipment) error
	UpdateStatus(ctx context.Context, id int64, status entity.ShipmentStatus, currentAddress *string) error
	Delete(ctx context.Context, id int64) error
}

const shipmentColumns = `id, tracking_id, user_id, user_email, recipient_name,
	       delivery_address, current_address, package_type, weight,
	       special_instructions, photo, status, delivery_date, created_at`

type shipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShipmentRepository(db database.PgxIface, log *zap.Logger) ShipmentRepository {
	return &shipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "shipment")),
	}
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(
		&s.ID,
		&s.TrackingID,
		&s.UserID,
		&s.UserEmail,
		&s.RecipientName,
		&s.DeliveryAddress,
		&s.CurrentAddress,
		&s.PackageType,
		&s.Weight,
		&s.SpecialInstructions,
		&s.Photo,
		&s.Status,
		&s.DeliveryDate,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (tracking_id, user_id, user_email, recipient_name,
		                       delivery_address, current_address, package_type, weight,
		                       special_instructions, photo, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		shipment.TrackingID,
		shipment.UserID,
		shipment.UserEmail,
		shipment.RecipientName,
		shipment.DeliveryAddress,
		shipment.CurrentAddress,
		shipment.PackageType,
		shipment.Weight,
		shipment.SpecialInstructions,
		shipment.Photo,
		shipment.Status,
		shipment.CreatedAt,
	).Scan(&shipment.ID)

	if err != nil {
		r.log.Error("Failed to create shipment",
			zap.Error(err),
			zap.String("tracking_id", shipment.TrackingID),
		)
		return fmt.Errorf("create shipment %s: %w", shipment.TrackingID, err)
	}

	return nil
}

func (r *shipmentRepository) FindByID(ctx context.Context, id int64) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`

	shipment, err := scanShipment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shipment by ID",
			zap.Error(err),
			zap.Int64("shipment_id", id),
		)
		return nil, fmt.Errorf("find shipment by ID %d: %w", id, err)
	}

	return shipment, nil
}

func (r *shipmentRepository) FindByTrackingID(ctx context.Context, trackingID string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE tracking_id = $1`

	shipment, err := scanShipment(r.db.QueryRow(ctx, query, trackingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shipment by tracking ID",
			zap.Error(err),
			zap.String("tracking_id", trackingID),
		)
		return nil, fmt.Errorf("find shipment by tracking ID %s: %w", trackingID, err)
	}

	return shipment, nil
}

func (r *shipmentRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return r.queryShipments(ctx, query, userID)
}

func (r *shipmentRepository) FindByStatus(ctx context.Context, status entity.ShipmentStatus) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE status = $1
		ORDER BY created_at DESC`

	return r.queryShipments(ctx, query, status)
}

func (r *shipmentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	return r.queryShipments(ctx, query, limit, offset)
}

func (r *shipmentRepository) queryShipments(ctx context.Context, query string, args ...any) ([]*entity.Shipment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query shipments", zap.Error(err))
		return nil, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*entity.Shipment
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment row: %w", err)
		}
		shipments = append(shipments, shipment)
	}

	return shipments, rows.Err()
}

func (r *shipmentRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shipments`).Scan(&total); err != nil {
		r.log.Error("Failed to count shipments", zap.Error(err))
		return 0, fmt.Errorf("count shipments: %w", err)
	}

	return total, nil
}

func (r *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	// tracking_id, user_id, dan created_at tidak pernah berubah
	query := `
		UPDATE shipments
		SET recipient_name = $1, delivery_address = $2, current_address = $3,
		    package_type = $4, weight = $5, special_instructions = $6,
		    photo = $7, status = $8, user_email = $9
		WHERE id = $10
	`

	result, err := r.db.Exec(ctx, query,
		shipment.RecipientName,
		shipment.DeliveryAddress,
		shipment.CurrentAddress,
		shipment.PackageType,
		shipment.Weight,
		shipment.SpecialInstructions,
		shipment.Photo,
		shipment.Status,
		shipment.UserEmail,
		shipment.ID,
	)

	if err != nil {
		r.log.Error("Failed to update shipment",
			zap.Error(err),
			zap.Int64("shipment_id", shipment.ID),
		)
		return fmt.Errorf("update shipment %d: %w", shipment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shipment %d not found", shipment.ID)
	}

	return nil
}

func (r *shipmentRepository) UpdateStatus(ctx context.Context, id int64, status entity.ShipmentStatus, currentAddress *string) error {
	query := `
		UPDATE shipments
		SET status = $1,
		    current_address = COALESCE($2, current_address),
		    delivery_date = CASE WHEN $1 = 'Delivered' THEN NOW() ELSE delivery_date END
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, status, currentAddress, id)
	if err != nil {
		r.log.Error("Failed to update shipment status",
			zap.Error(err),
			zap.Int64("shipment_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update shipment %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shipment %d not found", id)
	}

	return nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete shipment",
			zap.Error(err),
			zap.Int64("shipment_id", id),
		)
		return fmt.Errorf("delete shipment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shipment %d not found", id)
	}

	return nil
}
