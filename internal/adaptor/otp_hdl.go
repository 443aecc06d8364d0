package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"smart-tracking/internal/usecase"
	"smart-tracking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DeliveryOtpHandler struct {
	service usecase.DeliveryOtpService
	log     *zap.Logger
}

func NewDeliveryOtpHandler(service usecase.DeliveryOtpService, log *zap.Logger) *DeliveryOtpHandler {
	return &DeliveryOtpHandler{
		service: service,
		log:     log,
	}
}

// IssueOTP handles POST /api/shipment/otp/{shipmentId}
func (h *DeliveryOtpHandler) IssueOTP(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := utils.ParseID(chi.URLParam(r, "shipmentId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	otp, err := h.service.IssueOTP(r.Context(), shipmentID)
	if err != nil {
		handleServiceError(w, h.log, err, "issue OTP")
		return
	}

	utils.ResponseCreated(w, "OTP generated successfully", otp)
}

// VerifyOTP handles POST /api/shipment/otp/verify/{shipmentId}
// Body-nya JSON string mentah berisi kode, contoh: "483920"
func (h *DeliveryOtpHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := utils.ParseID(chi.URLParam(r, "shipmentId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	var code string
	if err := json.NewDecoder(r.Body).Decode(&code); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if strings.TrimSpace(code) == "" {
		utils.ResponseBadRequest(w, "OTP code cannot be empty", nil)
		return
	}

	if err := h.service.VerifyOTP(r.Context(), shipmentID, code); err != nil {
		handleServiceError(w, h.log, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "Delivery confirmed successfully", nil)
}
