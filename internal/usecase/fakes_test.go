package usecase

import (
	"context"
	"sync"

	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/data/repository"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

// Fake repositories in-memory untuk unit test service layer.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*entity.User
	err   error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[int64]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _, _ int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeShipmentRepo struct {
	mu        sync.Mutex
	shipments map[int64]*entity.Shipment
	nextID    int64
	err       error
}

func newFakeShipmentRepo(shipments ...*entity.Shipment) *fakeShipmentRepo {
	m := make(map[int64]*entity.Shipment)
	var max int64
	for _, s := range shipments {
		m[s.ID] = s
		if s.ID > max {
			max = s.ID
		}
	}
	return &fakeShipmentRepo{shipments: m, nextID: max}
}

func (f *fakeShipmentRepo) Create(_ context.Context, shipment *entity.Shipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	shipment.ID = f.nextID
	f.shipments[shipment.ID] = shipment
	return nil
}

func (f *fakeShipmentRepo) FindByID(_ context.Context, id int64) (*entity.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.shipments[id], nil
}

func (f *fakeShipmentRepo) FindByTrackingID(_ context.Context, trackingID string) (*entity.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shipments {
		if s.TrackingID == trackingID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShipmentRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Shipment
	for _, s := range f.shipments {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShipmentRepo) FindByStatus(_ context.Context, status entity.ShipmentStatus) ([]*entity.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Shipment
	for _, s := range f.shipments {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShipmentRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Shipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Shipment, 0, len(f.shipments))
	for _, s := range f.shipments {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShipmentRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.shipments)), nil
}

func (f *fakeShipmentRepo) Update(_ context.Context, shipment *entity.Shipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shipments[shipment.ID] = shipment
	return nil
}

func (f *fakeShipmentRepo) UpdateStatus(_ context.Context, id int64, status entity.ShipmentStatus, currentAddress *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.shipments[id]
	if !ok {
		return nil
	}
	s.Status = status
	if currentAddress != nil {
		s.CurrentAddress = *currentAddress
	}
	return nil
}

func (f *fakeShipmentRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shipments, id)
	return nil
}

type fakeOtpRepo struct {
	mu        sync.Mutex
	rows      []*entity.DeliveryOtp
	nextID    int64
	createErr error
	shipments *fakeShipmentRepo
}

func (f *fakeOtpRepo) Create(_ context.Context, otp *entity.DeliveryOtp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	otp.ID = f.nextID
	f.rows = append(f.rows, otp)
	return nil
}

func (f *fakeOtpRepo) FindUnusedMatch(_ context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if row.ShipmentID == shipmentID && row.OTPCode == code && !row.IsUsed {
			return row, nil
		}
	}
	return nil, nil
}

// Consume meniru transaksi repo asli: tandai used + flip shipment, atomik
// di bawah satu lock.
func (f *fakeOtpRepo) Consume(_ context.Context, shipmentID int64, code string) (*entity.DeliveryOtp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if row.ShipmentID == shipmentID && row.OTPCode == code && !row.IsUsed {
			row.IsUsed = true
			if f.shipments != nil {
				f.shipments.mu.Lock()
				if s, ok := f.shipments.shipments[shipmentID]; ok {
					s.Status = entity.StatusDelivered
				}
				f.shipments.mu.Unlock()
			}
			return row, nil
		}
	}
	return nil, nil
}

// Fake notification channels yang merekam setiap panggilan.

type fakeEmail struct {
	mu    sync.Mutex
	calls []string // "to|subject"
	body  string
	err   error
}

func (f *fakeEmail) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, to+"|"+subject)
	f.body = body
	return f.err
}

func (f *fakeEmail) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSms struct {
	mu       sync.Mutex
	phones   []string
	messages []string
	err      error
}

func (f *fakeSms) Send(_ context.Context, phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phones = append(f.phones, phone)
	f.messages = append(f.messages, message)
	return f.err
}

func (f *fakeSms) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.phones)
}

func testConfig() *utils.Config {
	return &utils.Config{
		OTP: utils.OTPConfig{
			Length:             6,
			SendTimeoutSeconds: 1,
		},
	}
}

func testRepo(users *fakeUserRepo, shipments *fakeShipmentRepo, otps *fakeOtpRepo) *repository.Repository {
	return &repository.Repository{
		User:        users,
		Shipment:    shipments,
		DeliveryOTP: otps,
	}
}

func strPtr(s string) *string { return &s }

var testLogger = zap.NewNop()
