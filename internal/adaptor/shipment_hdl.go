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

type ShipmentHandler struct {
	service usecase.ShipmentService
	log     *zap.Logger
}

func NewShipmentHandler(service usecase.ShipmentService, log *zap.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
		log:     log,
	}
}

// CreateShipment handles POST /api/shipments
func (h *ShipmentHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShipmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	shipment, err := h.service.CreateShipment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create shipment")
		return
	}

	utils.ResponseCreated(w, "Shipment registered successfully", shipment)
}

// GetShipment handles GET /api/shipments/{id}
func (h *ShipmentHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	shipment, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment retrieved successfully", shipment)
}

// GetShipmentByTrackingID handles GET /api/shipments/tracking/{trackingId}
func (h *ShipmentHandler) GetShipmentByTrackingID(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")
	if trackingID == "" {
		utils.ResponseBadRequest(w, "Tracking ID cannot be empty", nil)
		return
	}

	shipment, err := h.service.GetShipmentByTrackingID(r.Context(), trackingID)
	if err != nil {
		handleServiceError(w, h.log, err, "track shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment retrieved successfully", shipment)
}

// GetUserShipments handles GET /api/users/{id}/shipments
func (h *ShipmentHandler) GetUserShipments(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	shipments, err := h.service.GetShipmentsByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user shipments")
		return
	}

	utils.ResponseSuccess(w, "Shipments retrieved successfully", shipments)
}

// GetAllShipments handles GET /api/admin/shipments (admin only)
func (h *ShipmentHandler) GetAllShipments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	shipments, err := h.service.GetAllShipments(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all shipments")
		return
	}

	utils.ResponseSuccess(w, "Shipments retrieved successfully", shipments)
}

// UpdateShipment handles PUT /api/shipments/{id}
func (h *ShipmentHandler) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	var req request.UpdateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	shipment, err := h.service.UpdateShipment(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment updated successfully", shipment)
}

// UpdateStatus handles PATCH /api/shipments/{id}/status
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

// DeleteShipment handles DELETE /api/shipments/{id} (admin only)
func (h *ShipmentHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid shipment ID", nil)
		return
	}

	if err := h.service.DeleteShipment(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete shipment")
		return
	}

	utils.ResponseSuccess(w, "Shipment deleted successfully", nil)
}
