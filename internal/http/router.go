package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/contract"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/vehicle"
)

func New(
	reservationsV1 *reservation.Handler,
	contractsV1 *contract.Handler,
	vehiclesV1 *vehicle.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/reservations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reservationsV1.Routes(r)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			contractsV1.Routes(r)
		})

		r.Route("/vehicles", func(r chi.Router) {
			vehiclesV1.Routes(r)
		})
	})

	return router
}
