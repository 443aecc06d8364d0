package entity

import (
	"time"
)

// DeliveryOtp adalah kode sekali pakai untuk konfirmasi pengiriman.
// Satu row dimiliki satu shipment; is_used hanya berubah false -> true.
type DeliveryOtp struct {
	BaseSimple
	ShipmentID int64      `db:"shipment_id"`
	OTPCode    string     `db:"otp_code"`
	IsUsed     bool       `db:"is_used"`
	UsedAt     *time.Time `db:"used_at"`
}
