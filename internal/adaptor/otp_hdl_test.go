package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-tracking/internal/dto/response"
	"smart-tracking/internal/usecase"
	"smart-tracking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOtpService struct {
	issued     *response.DeliveryOtpResponse
	issueErr   error
	verifyErr  error
	gotID      int64
	gotCode    string
	verifyCall int
}

func (f *fakeOtpService) IssueOTP(_ context.Context, shipmentID int64) (*response.DeliveryOtpResponse, error) {
	f.gotID = shipmentID
	return f.issued, f.issueErr
}

func (f *fakeOtpService) VerifyOTP(_ context.Context, shipmentID int64, code string) error {
	f.verifyCall++
	f.gotID = shipmentID
	f.gotCode = code
	return f.verifyErr
}

func newOtpRouter(svc usecase.DeliveryOtpService) *chi.Mux {
	h := NewDeliveryOtpHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/shipment/otp/{shipmentId}", h.IssueOTP)
	r.Post("/api/shipment/otp/verify/{shipmentId}", h.VerifyOTP)
	return r
}

func TestIssueOTPHandler(t *testing.T) {
	svc := &fakeOtpService{
		issued: &response.DeliveryOtpResponse{ID: 1, OTP: "483920", ShipmentID: 42},
	}
	router := newOtpRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, int64(42), svc.gotID)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Status)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "483920", data["otp"])
}

func TestIssueOTPHandler_ShipmentNotFound(t *testing.T) {
	svc := &fakeOtpService{issueErr: usecase.ErrShipmentNotFound}
	router := newOtpRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIssueOTPHandler_BadID(t *testing.T) {
	svc := &fakeOtpService{}
	router := newOtpRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.gotID)
}

func TestVerifyOTPHandler(t *testing.T) {
	svc := &fakeOtpService{}
	router := newOtpRouter(svc)

	// Body adalah JSON string mentah, bukan objek
	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/verify/42", strings.NewReader(`"483920"`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(42), svc.gotID)
	require.Equal(t, "483920", svc.gotCode)
	require.Equal(t, 1, svc.verifyCall)
}

func TestVerifyOTPHandler_InvalidOTP(t *testing.T) {
	svc := &fakeOtpService{verifyErr: usecase.ErrInvalidOTP}
	router := newOtpRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/verify/42", strings.NewReader(`"111111"`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Status)
	require.Equal(t, "invalid or already used OTP", body.Message)
}

func TestVerifyOTPHandler_MalformedBody(t *testing.T) {
	svc := &fakeOtpService{}
	router := newOtpRouter(svc)

	// Objek JSON bukan string — ditolak sebelum sampai ke service
	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/verify/42", strings.NewReader(`{"otp":"483920"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.verifyCall)
}

func TestVerifyOTPHandler_EmptyCode(t *testing.T) {
	svc := &fakeOtpService{}
	router := newOtpRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/shipment/otp/verify/42", strings.NewReader(`""`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, svc.verifyCall)
}
