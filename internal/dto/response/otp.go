package response

import (
	"smart-tracking/internal/data/entity"
)

// DeliveryOtpResponse dikembalikan ke pemanggil saat issuance.
// Kode plaintext ikut dikembalikan, sama seperti perilaku API aslinya.
type DeliveryOtpResponse struct {
	ID         int64  `json:"id"`
	OTP        string `json:"otp"`
	ShipmentID int64  `json:"shipment_id"`
}

func DeliveryOtpToResponse(otp *entity.DeliveryOtp) *DeliveryOtpResponse {
	return &DeliveryOtpResponse{
		ID:         otp.ID,
		OTP:        otp.OTPCode,
		ShipmentID: otp.ShipmentID,
	}
}
