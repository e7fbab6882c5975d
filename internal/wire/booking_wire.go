package wire

import (
	"travel-agency/internal/adaptor"
	"travel-agency/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, limiter *middleware.RateLimiter) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.With(limiter.Limit).Post("/", bookingHandler.StartBooking)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bookingHandler.GetBooking)
			r.Patch("/", bookingHandler.PatchBooking)
			r.Delete("/", bookingHandler.DiscardBooking)
			r.Post("/next", bookingHandler.NextStep)
			r.Post("/previous", bookingHandler.PreviousStep)
			r.With(limiter.Limit).Post("/submit", bookingHandler.SubmitBooking)
			r.Get("/confirmation.pdf", bookingHandler.ConfirmationPDF)
		})
	})
}
