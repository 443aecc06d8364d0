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

func wireCourier(
	r chi.Router,
	courierHandler *adaptor.CourierHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== HANDLER DASHBOARD ROUTES ====================
	// Semua route dashboard petugas butuh role handler atau admin
	r.Route("/api/handler/shipments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleHandler, entity.RoleAdmin))

		r.Get("/", courierHandler.GetShipmentsForReview)           // GET /api/handler/shipments
		r.Get("/in-transit", courierHandler.GetInTransitShipments) // GET /api/handler/shipments/in-transit
		r.Put("/{id}/status", courierHandler.UpdateStatus)         // PUT /api/handler/shipments/{id}/status
		r.Put("/{id}/deliver", courierHandler.MarkDelivered)       // PUT /api/handler/shipments/{id}/deliver
	})
}
