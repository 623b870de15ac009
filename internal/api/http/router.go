package http

import (
	"onerental-backend/internal/security"
	"onerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Verifier     security.IdentityVerifier
	AuthSvc      service.AuthService // nil when a hosted identity provider is used
	DashboardSvc service.DashboardService
	BookingSvc   service.BookingService
	EquipmentSvc service.EquipmentService
	InsightSvc   service.InsightService
}

// NewRouter wires all API routes. Everything under /api/v1 except /auth
// requires a bearer token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	if deps.AuthSvc != nil {
		authHandler := NewAuthHandler(deps.AuthSvc)
		auth := api.PathPrefix("/auth").Subrouter()
		auth.HandleFunc("/signup", authHandler.Signup).Methods("POST")
		auth.HandleFunc("/login", authHandler.Login).Methods("POST")
		auth.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	}

	protected := api.NewRoute().Subrouter()
	protected.Use(NewAuthMiddleware(deps.Verifier).Handler)

	dashboardHandler := NewDashboardHandler(deps.DashboardSvc)
	protected.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")
	protected.HandleFunc("/dashboard/revenue.csv", dashboardHandler.ExportRevenueCSV).Methods("GET")

	bookingHandler := NewBookingHandler(deps.BookingSvc)
	protected.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	protected.HandleFunc("/bookings/mine", bookingHandler.ListMine).Methods("GET")
	protected.HandleFunc("/bookings/{id}/approve", bookingHandler.Approve).Methods("POST")
	protected.HandleFunc("/bookings/{id}/reject", bookingHandler.Reject).Methods("POST")
	protected.HandleFunc("/bookings/{id}/deliver", bookingHandler.Deliver).Methods("POST")
	protected.HandleFunc("/bookings/{id}/complete", bookingHandler.Complete).Methods("POST")
	protected.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")

	equipmentHandler := NewEquipmentHandler(deps.EquipmentSvc)
	protected.HandleFunc("/equipment", equipmentHandler.Create).Methods("POST")
	protected.HandleFunc("/equipment/mine", equipmentHandler.ListMine).Methods("GET")
	protected.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods("GET")
	protected.HandleFunc("/equipment/{id}", equipmentHandler.Update).Methods("PUT")
	protected.HandleFunc("/equipment/{id}/status", equipmentHandler.SetStatus).Methods("PUT")
	protected.HandleFunc("/equipment/{id}/images", equipmentHandler.RequestImageUpload).Methods("POST")
	protected.HandleFunc("/equipment/{id}/images/{imageId}/confirm", equipmentHandler.ConfirmImageUpload).Methods("POST")
	protected.HandleFunc("/equipment/{id}/images/{imageId}/main", equipmentHandler.SetMainImage).Methods("PUT")
	protected.HandleFunc("/equipment/{id}/images/{imageId}/url", equipmentHandler.ImageDownloadURL).Methods("GET")
	protected.HandleFunc("/equipment/{id}/images/{imageId}", equipmentHandler.DeleteImage).Methods("DELETE")

	insightHandler := NewInsightHandler(deps.InsightSvc)
	protected.HandleFunc("/insights", insightHandler.List).Methods("GET")
	protected.HandleFunc("/insights/{id}/snooze", insightHandler.Snooze).Methods("POST")
	protected.HandleFunc("/insights/{id}/dismiss", insightHandler.Dismiss).Methods("POST")

	return router
}
