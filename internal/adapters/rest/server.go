package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "realestate-frontend/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigin string,
	sessions core_port.SessionStorePort,
	propertyHandler *PropertyHandler,
	wishlistHandler *WishlistHandler,
	listingHandler *ListingHandler,
	paymentHandler *PaymentHandler,
	adminHandler *AdminHandler,
	inboxHandler *InboxHandler,
	todoHandler *TodoHandler,
	sessionHandler *SessionHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
	}))
	r.Use(AuthMiddleware(sessions))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/properties", propertyHandler.Browse)
		r.Get("/properties/{propertyID}", propertyHandler.GetDetails)

		r.Get("/wishlist", wishlistHandler.Get)
		r.Post("/wishlist/toggle", wishlistHandler.Toggle)
		r.Delete("/wishlist/{propertyID}", wishlistHandler.Remove)

		r.Post("/listings", listingHandler.Create)
		r.Put("/listings/{propertyID}", listingHandler.Update)
		r.Delete("/listings/{propertyID}", listingHandler.Delete)

		r.Post("/payment/orders", paymentHandler.CreateOrder)
		r.Post("/payment/callback", paymentHandler.Callback)

		r.Post("/session", sessionHandler.Save)
		r.Post("/logout", sessionHandler.Logout)

		// Роуты админки закрыты проверкой роли
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireRole("ADMIN"))

			r.Get("/users", adminHandler.GetUsers)
			r.Put("/users/{userID}/role", adminHandler.ChangeUserRole)

			r.Get("/properties", adminHandler.GetAllProperties)
			r.Put("/properties/{propertyID}/status", adminHandler.UpdatePropertyStatus)
			r.Delete("/properties/{propertyID}", adminHandler.DeleteProperty)

			r.Get("/inbox/{userID}", inboxHandler.Open)
			r.Post("/inbox/{userID}/reply", inboxHandler.Reply)

			r.Get("/todos", todoHandler.List)
			r.Post("/todos", todoHandler.Add)
			r.Delete("/todos/{todoID}", todoHandler.Remove)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
