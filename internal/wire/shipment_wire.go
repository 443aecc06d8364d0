package wire

import (
	"smart-tracking/internal/adaptor"
	"smart-tracking/internal/data/entity"
	"smart-tracking/internal/data/repository"
	"smart-tracking/pkg/middleware"
	"smart-tracking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShipment(
	r chi.Router,
	shipmentHandler *adaptor.ShipmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Tracking publik: siapa pun dengan nomor resi bisa melihat status
	r.Get("/api/shipments/tracking/{trackingId}", shipmentHandler.GetShipmentByTrackingID)

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/shipments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", shipmentHandler.CreateShipment)             // POST /api/shipments
		r.Get("/{id}", shipmentHandler.GetShipment)             // GET /api/shipments/{id}
		r.Put("/{id}", shipmentHandler.UpdateShipment)          // PUT /api/shipments/{id}
		r.Patch("/{id}/status", shipmentHandler.UpdateStatus)   // PATCH /api/shipments/{id}/status
	})

	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/users/{id}/shipments", shipmentHandler.GetUserShipments)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/shipments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Get("/", shipmentHandler.GetAllShipments)         // GET /api/admin/shipments
		r.Delete("/{id}", shipmentHandler.DeleteShipment)   // DELETE /api/admin/shipments/{id}
	})
}
