package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"travel-agency/internal/booking"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// StartBooking handles POST /api/bookings
func (h *BookingHandler) StartBooking(w http.ResponseWriter, r *http.Request) {
	var req request.StartBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Start(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "start booking", packagesLink)
		return
	}

	utils.ResponseCreated(w, "Booking started", session)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get booking", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// PatchBooking handles PATCH /api/bookings/{id}
func (h *BookingHandler) PatchBooking(w http.ResponseWriter, r *http.Request) {
	var patch booking.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Patch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, h.log, err, "update booking", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// NextStep handles POST /api/bookings/{id}/next
func (h *BookingHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Next(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "next booking step", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// PreviousStep handles POST /api/bookings/{id}/previous
func (h *BookingHandler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Previous(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "previous booking step", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SubmitBooking handles POST /api/bookings/{id}/submit
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "submit booking", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed", session)
}

// ConfirmationPDF handles GET /api/bookings/{id}/confirmation.pdf
func (h *BookingHandler) ConfirmationPDF(w http.ResponseWriter, r *http.Request) {
	doc, reference, err := h.service.ConfirmationPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "render confirmation", packagesLink)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reference+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.log.Warn("Failed to write confirmation", zap.Error(err))
	}
}

// DiscardBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DiscardBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Discard(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "discard booking", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "Booking discarded", nil)
}
