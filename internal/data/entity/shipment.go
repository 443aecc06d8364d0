package entity

import (
	"time"
)

type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "Pending"
	StatusInTransit ShipmentStatus = "In Transit"
	StatusDelivered ShipmentStatus = "Delivered"
)

// statusRank menentukan urutan status; status hanya boleh maju.
var statusRank = map[ShipmentStatus]int{
	StatusPending:   0,
	StatusInTransit: 1,
	StatusDelivered: 2,
}

// ValidStatus reports whether s is a known shipment status.
func ValidStatus(s ShipmentStatus) bool {
	_, ok := statusRank[s]
	return ok
}

type Shipment struct {
	BaseSimple
	TrackingID          string         `db:"tracking_id"`
	UserID              int64          `db:"user_id"`
	UserEmail           string         `db:"user_email"`
	RecipientName       string         `db:"recipient_name"`
	DeliveryAddress     string         `db:"delivery_address"`
	CurrentAddress      string         `db:"current_address"`
	PackageType         string         `db:"package_type"`
	Weight              float64        `db:"weight"`
	SpecialInstructions *string        `db:"special_instructions"`
	Photo               *string        `db:"photo"`
	Status              ShipmentStatus `db:"status"`
	DeliveryDate        *time.Time     `db:"delivery_date"`
}

// CanTransitionTo reports whether the shipment may move to next.
// Delivered is terminal; everything else only moves forward.
func (s *Shipment) CanTransitionTo(next ShipmentStatus) bool {
	cur, ok := statusRank[s.Status]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}
