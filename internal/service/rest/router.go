package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// NewRouter собирает маршруты booking API с базовыми middleware.
func NewRouter(handler *BookingHandler, logger *log.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Post("/bookings", handler.CreateBooking)
	r.Get("/bookings", handler.ListBookings)
	r.Get("/bookings/{id}", handler.GetBooking)

	return r
}
