package adaptor

import (
	"encoding/json"
	"net/http"

	"smart-tracking/internal/dto/request"
	"smart-tracking/internal/usecase"
	"smart-tracking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourierHandler melayani dashboard petugas (handler/kurir).
type CourierHandler struct {
	service usecase.ShipmentService
	log     *zap.Logger
}

func NewCourierHandler(service usecase.ShipmentService, log *zap.Logger) *CourierHandler {
	return &CourierHandler{
		service: service,
		log:     log,
	}
}

// GetShipmentsForReview handles GET /api/handler/shipments
func (h *CourierHandler) GetShipmentsForReview(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.service.GetShipmentsForReview(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get shipments for review")
		return
	}

	utils.ResponseSuccess(w, "Shipments retrieved successfully", shipments)
}

// GetInTransitShipments handles GET /api/handler/shipments/in-transit
func (h *CourierHandler) GetInTransitShipments(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.service.GetInTransitShipments(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get in-transit shipments")
		return
	}

	utils.ResponseSuccess(w, "Shipments retrieved successfully", shipments)
}

// UpdateStatus handles PUT /api/handler/shipments/{id}/status
func (h *CourierHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	var req request.ShipmentStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	shipment, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update shipment status")
		return
	}

	utils.ResponseSuccess(w, "Shipment status updated successfully", shipment)
}

// MarkDelivered handles PUT /api/handler/shipments/{id}/deliver
// Jalur override manual, bukan verifikasi OTP.
func (h *CourierHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	var req request.DeliveryConfirmationRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	shipment, err := h.service.MarkDelivered(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "mark shipment delivered")
		return
	}

	utils.ResponseSuccess(w, "Shipment marked as delivered", shipment)
}
