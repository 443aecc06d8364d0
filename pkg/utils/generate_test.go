package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	require.Len(t, otp, 6)
	for _, c := range otp {
		require.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", otp)
	}
}

func TestGenerateOTP_DefaultLength(t *testing.T) {
	// Length tidak valid jatuh ke default 6 digit
	require.Len(t, GenerateOTP(0), 6)
	require.Len(t, GenerateOTP(-3), 6)
	require.Len(t, GenerateOTP(8), 8)
}

func TestGenerateTrackingID(t *testing.T) {
	id := GenerateTrackingID()

	parts := strings.Split(id, "-")
	require.Len(t, parts, 4, "format ST-YYYYMMDD-HHMMSS-RANDOM, got %q", id)
	require.Equal(t, "ST", parts[0])
	require.Len(t, parts[1], 8)
	require.Len(t, parts[2], 6)
	require.Len(t, parts[3], 6)
}

func TestGenerateTrackingID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateTrackingID()
		require.False(t, seen[id], "duplicate tracking ID %q", id)
		seen[id] = true
	}
}
