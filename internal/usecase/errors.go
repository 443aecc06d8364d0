package usecase

import (
	"errors"
)

// Sentinel errors yang harus dipetakan ke HTTP status tertentu oleh adaptor.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidOTP sengaja generik: salah kode, sudah dipakai, atau
	// shipment tidak ada — caller tidak boleh bisa membedakan.
	ErrInvalidOTP    = errors.New("invalid or already used OTP")
	ErrBadTransition = errors.New("invalid status transition")
)
