package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"coffeeshop/internal/mw"
	"coffeeshop/internal/service"
)

func NewRouter(menuSvc *service.MenuService, orderSvc *service.OrderService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.LimitBody(mw.DefaultMaxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", HealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", ListMenuHandler(menuSvc))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", CreateOrderHandler(orderSvc))
			r.Get("/", ListOrdersHandler(orderSvc))
			r.Get("/{id}", GetOrderHandler(orderSvc))
			r.Put("/{id}", UpdateOrderHandler(orderSvc))
			r.Delete("/{id}", DeleteOrderHandler(orderSvc))
		})
	})

	return r
}
