package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ==================== TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== OTP ====================

// GenerateOTP creates a numeric OTP of specified length.
// Digit diambil dari crypto/rand, bukan math/rand.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand gagal artinya sistem bermasalah serius
			panic(fmt.Sprintf("generate otp digit: %v", err))
		}
		otp[i] = byte('0' + n.Int64())
	}

	return string(otp)
}

// ==================== TRACKING ID ====================

// GenerateTrackingID creates a unique tracking ID with timestamp.
// Format: ST-YYYYMMDD-HHMMSS-RANDOM
func GenerateTrackingID() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(fmt.Sprintf("generate tracking id: %v", err))
	}
	randomPart := fmt.Sprintf("%06d", n.Int64())

	return fmt.Sprintf("ST-%s-%s-%s", datePart, timePart, randomPart)
}
