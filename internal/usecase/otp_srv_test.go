package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"smart-tracking/internal/data/entity"

	"github.com/stretchr/testify/require"
)

func seedShipmentAndUser() (*fakeUserRepo, *fakeShipmentRepo) {
	user := &entity.User{
		Base:      entity.Base{ID: 7},
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@example.com",
		Phone:     strPtr("+6281234567890"),
		Role:      entity.RoleUser,
		IsActive:  true,
	}
	shipment := &entity.Shipment{
		BaseSimple:      entity.BaseSimple{ID: 42, CreatedAt: time.Now()},
		TrackingID:      "ST-20260829-120000-000042",
		UserID:          7,
		UserEmail:       "budi@example.com",
		RecipientName:   "Siti Rahma",
		DeliveryAddress: "Jl. Merdeka 10, Jakarta",
		CurrentAddress:  "Sorting Center Bandung",
		PackageType:     "Electronics",
		Weight:          1.5,
		Status:          entity.StatusInTransit,
	}
	return newFakeUserRepo(user), newFakeShipmentRepo(shipment)
}

func TestIssueOTP_PersistsCodeBeforeNotification(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{shipments: shipments}
	// Kedua channel gagal total; issuance tetap harus sukses.
	email := &fakeEmail{err: context.DeadlineExceeded}
	sms := &fakeSms{err: context.DeadlineExceeded}

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), email, sms, testConfig(), testLogger)

	resp, err := svc.IssueOTP(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Equal(t, int64(42), resp.ShipmentID)
	require.Len(t, resp.OTP, 6)
	for _, c := range resp.OTP {
		require.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", resp.OTP)
	}

	otps.mu.Lock()
	defer otps.mu.Unlock()
	require.Len(t, otps.rows, 1)
	require.Equal(t, resp.OTP, otps.rows[0].OTPCode)
	require.False(t, otps.rows[0].IsUsed)
}

func TestIssueOTP_UnknownShipment(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{}

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	resp, err := svc.IssueOTP(context.Background(), 999)
	require.ErrorIs(t, err, ErrShipmentNotFound)
	require.Nil(t, resp)
	require.Empty(t, otps.rows)
}

func TestIssueOTP_PersistFailure(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{createErr: context.DeadlineExceeded}

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	resp, err := svc.IssueOTP(context.Background(), 42)
	require.Error(t, err)
	require.Nil(t, resp)
}

func TestVerifyOTP_ConsumesExactlyOnce(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{shipments: shipments}
	require.NoError(t, otps.Create(context.Background(), &entity.DeliveryOtp{
		ShipmentID: 42,
		OTPCode:    "483920",
	}))

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	require.NoError(t, svc.VerifyOTP(context.Background(), 42, "483920"))

	got, err := shipments.FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, entity.StatusDelivered, got.Status)

	// Kode yang sama tidak bisa dipakai dua kali
	err = svc.VerifyOTP(context.Background(), 42, "483920")
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{shipments: shipments}
	require.NoError(t, otps.Create(context.Background(), &entity.DeliveryOtp{
		ShipmentID: 42,
		OTPCode:    "483920",
	}))

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	err := svc.VerifyOTP(context.Background(), 42, "111111")
	require.ErrorIs(t, err, ErrInvalidOTP)

	// Tidak ada yang berubah
	otps.mu.Lock()
	require.False(t, otps.rows[0].IsUsed)
	otps.mu.Unlock()

	got, err := shipments.FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, entity.StatusInTransit, got.Status)
}

func TestVerifyOTP_WrongShipment(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{shipments: shipments}
	require.NoError(t, otps.Create(context.Background(), &entity.DeliveryOtp{
		ShipmentID: 42,
		OTPCode:    "483920",
	}))

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	// Kode milik shipment lain tidak boleh lolos
	err := svc.VerifyOTP(context.Background(), 43, "483920")
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_ConcurrentOnlyOneWins(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	otps := &fakeOtpRepo{shipments: shipments}
	require.NoError(t, otps.Create(context.Background(), &entity.DeliveryOtp{
		ShipmentID: 42,
		OTPCode:    "483920",
	}))

	svc := NewDeliveryOtpService(testRepo(users, shipments, otps), &fakeEmail{}, &fakeSms{}, testConfig(), testLogger)

	const attempts = 8
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.VerifyOTP(context.Background(), 42, "483920")
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, ErrInvalidOTP)
		}
	}
	require.Equal(t, 1, successes, "exactly one concurrent verify must win")
}

func TestSendOTPNotifications_EmailFailureDoesNotBlockSMS(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	email := &fakeEmail{err: context.DeadlineExceeded}
	sms := &fakeSms{}

	svc := NewDeliveryOtpService(testRepo(users, shipments, &fakeOtpRepo{}), email, sms, testConfig(), testLogger).(*deliveryOtpService)

	shipment, _ := shipments.FindByID(context.Background(), 42)
	user, _ := users.FindByID(context.Background(), 7)

	svc.sendOTPNotifications(shipment, user, "483920")

	require.Equal(t, 1, email.callCount())
	require.Equal(t, 1, sms.callCount(), "SMS must still be attempted after email failure")
	require.Contains(t, sms.messages[0], "483920")
	require.Equal(t, "+6281234567890", sms.phones[0])
}

func TestSendOTPNotifications_SkipsSMSWithoutPhone(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	email := &fakeEmail{}
	sms := &fakeSms{}

	svc := NewDeliveryOtpService(testRepo(users, shipments, &fakeOtpRepo{}), email, sms, testConfig(), testLogger).(*deliveryOtpService)

	shipment, _ := shipments.FindByID(context.Background(), 42)
	user, _ := users.FindByID(context.Background(), 7)
	user.Phone = nil

	svc.sendOTPNotifications(shipment, user, "483920")

	require.Equal(t, 1, email.callCount())
	require.Zero(t, sms.callCount(), "no SMS without a phone number")
}

func TestBuildOTPEmailBody(t *testing.T) {
	body := buildOTPEmailBody("Siti Rahma", "ST-20260829-120000-000042", "483920")
	require.True(t, strings.Contains(body, "Siti Rahma"))
	require.True(t, strings.Contains(body, "ST-20260829-120000-000042"))
	require.True(t, strings.Contains(body, "483920"))
}
