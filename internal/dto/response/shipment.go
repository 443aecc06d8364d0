package response

import (
	"time"

	"smart-tracking/internal/data/entity"
)

type ShipmentResponse struct {
	ID                  int64                 `json:"id"`
	TrackingID          string                `json:"tracking_id"`
	UserID              int64                 `json:"user_id"`
	UserEmail           string                `json:"user_email"`
	RecipientName       string                `json:"recipient_name"`
	DeliveryAddress     string                `json:"delivery_address"`
	CurrentAddress      string                `json:"current_address"`
	PackageType         string                `json:"package_type"`
	Weight              float64               `json:"weight"`
	SpecialInstructions *string               `json:"special_instructions,omitempty"`
	Photo               *string               `json:"photo,omitempty"`
	Status              entity.ShipmentStatus `json:"status"`
	DeliveryDate        *time.Time            `json:"delivery_date,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
}

func ShipmentToResponse(s *entity.Shipment) *ShipmentResponse {
	return &ShipmentResponse{
		ID:                  s.ID,
		TrackingID:          s.TrackingID,
		UserID:              s.UserID,
		UserEmail:           s.UserEmail,
		RecipientName:       s.RecipientName,
		DeliveryAddress:     s.DeliveryAddress,
		CurrentAddress:      s.CurrentAddress,
		PackageType:         s.PackageType,
		Weight:              s.Weight,
		SpecialInstructions: s.SpecialInstructions,
		Photo:               s.Photo,
		Status:              s.Status,
		DeliveryDate:        s.DeliveryDate,
		CreatedAt:           s.CreatedAt,
	}
}

func ShipmentsToResponse(shipments []*entity.Shipment) []*ShipmentResponse {
	out := make([]*ShipmentResponse, len(shipments))
	for i, s := range shipments {
		out[i] = ShipmentToResponse(s)
	}
	return out
}
