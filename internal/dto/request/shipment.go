package request

type CreateShipmentRequest struct {
	UserID              int64   `json:"user_id" validate:"required,gt=0"`
	RecipientName       string  `json:"recipient_name" validate:"required,max=100"`
	DeliveryAddress     string  `json:"delivery_address" validate:"required,max=255"`
	CurrentAddress      string  `json:"current_address" validate:"required,max=255"`
	PackageType         string  `json:"package_type" validate:"required,max=50"`
	Weight              float64 `json:"weight" validate:"required,gt=0"`
	SpecialInstructions *string `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
	Photo               *string `json:"photo,omitempty"`
}

type UpdateShipmentRequest struct {
	RecipientName       string  `json:"recipient_name" validate:"required,max=100"`
	DeliveryAddress     string  `json:"delivery_address" validate:"required,max=255"`
	CurrentAddress      string  `json:"current_address" validate:"required,max=255"`
	PackageType         string  `json:"package_type" validate:"required,max=50"`
	Weight              float64 `json:"weight" validate:"required,gt=0"`
	SpecialInstructions *string `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
	Photo               *string `json:"photo,omitempty"`
}

type ShipmentStatusUpdateRequest struct {
	Status         string  `json:"status" validate:"required,oneof=Pending 'In Transit' Delivered"`
	CurrentAddress *string `json:"current_address,omitempty" validate:"omitempty,max=255"`
}

// DeliveryConfirmationRequest dipakai handler override, bukan jalur OTP
type DeliveryConfirmationRequest struct {
	DeliveryAddress *string `json:"delivery_address,omitempty" validate:"omitempty,max=255"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
