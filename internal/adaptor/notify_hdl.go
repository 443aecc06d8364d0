package adaptor

import (
	"encoding/json"
	"net/http"

	"smart-tracking/internal/dto/request"
	"smart-tracking/internal/usecase"
	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

type NotifyHandler struct {
	service usecase.NotifyService
	log     *zap.Logger
}

func NewNotifyHandler(service usecase.NotifyService, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		service: service,
		log:     log,
	}
}

// SendTestEmail handles POST /api/notify/test-email
func (h *NotifyHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req request.TestEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	code, err := h.service.SendTestEmail(r.Context(), req.Email)
	if err != nil {
		handleServiceError(w, h.log, err, "send test email")
		return
	}

	utils.ResponseSuccess(w, "Test email sent successfully", map[string]string{"otp": code})
}

// SendTestSms handles POST /api/notify/test-sms
func (h *NotifyHandler) SendTestSms(w http.ResponseWriter, r *http.Request) {
	var req request.TestSmsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	code, err := h.service.SendTestSms(r.Context(), req.Phone)
	if err != nil {
		handleServiceError(w, h.log, err, "send test sms")
		return
	}

	utils.ResponseSuccess(w, "Test SMS sent successfully", map[string]string{"otp": code})
}
