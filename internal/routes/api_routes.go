package routes

import (
	"github.com/go-chi/chi/v5"

	"havahills/backoffice/internal/api"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, handlers *api.Handlers, deps *api.Dependencies) {

	// Public routes with metrics
	r.Group(func(public chi.Router) {
		public.Use(middleware.MetricsMiddleware(metricsReg))
		public.Post("/api/v1/auth/login", handlers.Login())
		public.Get("/api/v1/documents/shared/{token}", handlers.ResolveSharedDocument())
	})

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Services.Session))
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		v1.Post("/auth/logout", handlers.Logout())
		v1.Get("/auth/session", handlers.Session())

		// Staff group: admins and limited-access users
		v1.Group(func(staff chi.Router) {
			staff.Use(middleware.IsStaffMiddleware())

			staff.Get("/documents", handlers.ListDocuments())
			staff.Get("/documents/{client}/files", handlers.ListDocumentFiles())
			staff.Post("/documents/{client}/files", handlers.UploadDocument())
			staff.Post("/documents/share", handlers.ShareDocument())

			staff.Get("/tickets", handlers.ListTickets())
			staff.Post("/tickets", handlers.CreateTicket())
			staff.Get("/tickets/{id}", handlers.GetTicket())
			staff.Put("/tickets/{id}/status", handlers.SetTicketStatus())

			staff.Get("/chat/messages", handlers.ChatHistory())
			staff.Post("/chat/messages", handlers.PostChatMessage())
			staff.Get("/chat/unread", handlers.ChatUnread())

			// Admin-only group
			staff.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Get("/dashboard/stats", handlers.DashboardStats())

				admin.Get("/inventory", handlers.ListInventory())
				admin.Post("/inventory", handlers.AddProperty())
				admin.Put("/inventory/{id}", handlers.UpdateProperty())
				admin.Delete("/inventory/{id}", handlers.DeleteProperty())
				admin.Post("/inventory/import", handlers.ImportProperties())

				admin.Get("/clients", handlers.ListClients())
				admin.Post("/clients/account", handlers.CreateClientAccount())

				admin.Get("/payments", handlers.ListPayments())
				admin.Post("/payments", handlers.CreatePayment())
				admin.Put("/payments/{id}/status", handlers.SetPaymentStatus())
				admin.Get("/payments/statement/{client}", handlers.Statement())
			})
		})

		// Client portal group
		v1.Group(func(portal chi.Router) {
			portal.Use(middleware.IsClientMiddleware())

			portal.Get("/portal/lots", handlers.MyLots())
			portal.Get("/portal/statement", handlers.MyStatement())
			portal.Get("/portal/documents", handlers.MyDocuments())
		})
	})
}
