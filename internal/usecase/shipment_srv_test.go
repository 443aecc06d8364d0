package usecase

import (
	"context"
	"strings"
	"testing"

	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/dto/request"

	"github.com/stretchr/testify/require"
)

func newShipmentService(users *fakeUserRepo, shipments *fakeShipmentRepo) ShipmentService {
	return NewShipmentService(
		testRepo(users, shipments, &fakeOtpRepo{}),
		&fakeEmail{}, &fakeSms{}, testConfig(), testLogger,
	)
}

func TestCreateShipment(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.CreateShipment(context.Background(), &request.CreateShipmentRequest{
		UserID:          7,
		RecipientName:   "Siti Rahma",
		DeliveryAddress: "Jl. Merdeka 10, Jakarta",
		CurrentAddress:  "Warehouse Jakarta",
		PackageType:     "Documents",
		Weight:          0.4,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Tracking ID digenerate dengan format ST-YYYYMMDD-HHMMSS-RANDOM
	require.True(t, strings.HasPrefix(resp.TrackingID, "ST-"), "got %q", resp.TrackingID)
	require.Len(t, strings.Split(resp.TrackingID, "-"), 4)

	// Status awal selalu Pending, email pemilik di-denormalize
	require.Equal(t, entity.StatusPending, resp.Status)

	stored, err := shipments.FindByTrackingID(context.Background(), resp.TrackingID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "budi@example.com", stored.UserEmail)
	require.Equal(t, int64(7), stored.UserID)
}

func TestCreateShipment_UnknownUser(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.CreateShipment(context.Background(), &request.CreateShipmentRequest{
		UserID:          999,
		RecipientName:   "Siti Rahma",
		DeliveryAddress: "Jl. Merdeka 10, Jakarta",
		CurrentAddress:  "Warehouse Jakarta",
		PackageType:     "Documents",
		Weight:          0.4,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Nil(t, resp)
}

func TestCreateShipment_ValidationFailure(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.CreateShipment(context.Background(), &request.CreateShipmentRequest{
		UserID: 7,
		// recipient_name dkk kosong
	})
	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "validation failed")
}

func TestUpdateStatus_ForwardOnly(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	shipments.shipments[42].Status = entity.StatusPending
	svc := newShipmentService(users, shipments)

	// Pending -> In Transit boleh
	resp, err := svc.UpdateStatus(context.Background(), 42, &request.ShipmentStatusUpdateRequest{
		Status: string(entity.StatusInTransit),
	})
	require.NoError(t, err)
	require.Equal(t, entity.StatusInTransit, resp.Status)

	// In Transit -> Pending adalah langkah mundur
	_, err = svc.UpdateStatus(context.Background(), 42, &request.ShipmentStatusUpdateRequest{
		Status: string(entity.StatusPending),
	})
	require.ErrorIs(t, err, ErrBadTransition)

	// In Transit -> In Transit juga ditolak
	_, err = svc.UpdateStatus(context.Background(), 42, &request.ShipmentStatusUpdateRequest{
		Status: string(entity.StatusInTransit),
	})
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestUpdateStatus_DeliveredIsTerminal(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	shipments.shipments[42].Status = entity.StatusDelivered
	svc := newShipmentService(users, shipments)

	_, err := svc.UpdateStatus(context.Background(), 42, &request.ShipmentStatusUpdateRequest{
		Status: string(entity.StatusInTransit),
	})
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestUpdateStatus_UpdatesCurrentAddress(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.UpdateStatus(context.Background(), 42, &request.ShipmentStatusUpdateRequest{
		Status:         string(entity.StatusDelivered),
		CurrentAddress: strPtr("Jl. Merdeka 10, Jakarta"),
	})
	require.NoError(t, err)
	require.Equal(t, "Jl. Merdeka 10, Jakarta", resp.CurrentAddress)
}

func TestMarkDelivered(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.MarkDelivered(context.Background(), 42, &request.DeliveryConfirmationRequest{})
	require.NoError(t, err)
	require.Equal(t, entity.StatusDelivered, resp.Status)

	// Sudah delivered, tidak bisa delivered lagi
	_, err = svc.MarkDelivered(context.Background(), 42, &request.DeliveryConfirmationRequest{})
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestMarkDelivered_UnknownShipment(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	_, err := svc.MarkDelivered(context.Background(), 999, &request.DeliveryConfirmationRequest{})
	require.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestGetShipmentByTrackingID(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	resp, err := svc.GetShipmentByTrackingID(context.Background(), "ST-20260829-120000-000042")
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.ID)

	_, err = svc.GetShipmentByTrackingID(context.Background(), "ST-00000000-000000-000000")
	require.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestGetInTransitShipments(t *testing.T) {
	users, shipments := seedShipmentAndUser()
	svc := newShipmentService(users, shipments)

	list, err := svc.GetInTransitShipments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(42), list[0].ID)
}
