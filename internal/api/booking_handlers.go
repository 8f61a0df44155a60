package api

import (
	"net/http"

	"condopark/internal/auth"
	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	Service    *service.BookingService
	Matcher    *service.Matcher
	Validation *service.ValidationService
	clock      service.Clock
}

func NewBookingHandler(svc *service.BookingService, matcher *service.Matcher, validation *service.ValidationService, clock service.Clock) *BookingHandler {
	return &BookingHandler{Service: svc, Matcher: matcher, Validation: validation, clock: clock}
}

// CreateBooking runs the matcher before handing the request to the ledger,
// which does not check the slot window itself.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	parker, _ := auth.IdentityFrom(r.Context())
	var req entities.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.SlotID == "" {
		respondError(w, r, apperrors.NewValidationError("slot_id", "is required"))
		return
	}
	iv, err := entities.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		respondError(w, r, err)
		return
	}
	eligible, err := h.Matcher.Eligible(r.Context(), req.SlotID, iv)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !eligible {
		respondError(w, r, apperrors.NewValidationError("slot_id", "slot is not available for the whole requested interval"))
		return
	}

	booking, err := h.Service.CreateBooking(r.Context(), parker, req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, BookingResponse{Booking: *booking})
}

func (h *BookingHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	parker, _ := auth.IdentityFrom(r.Context())
	bookings, err := h.Service.ListParkerBookings(r.Context(), parker.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
}

func (h *BookingHandler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListAllBookings(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req entities.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Status == "" {
		respondError(w, r, apperrors.NewValidationError("new_status", "is required"))
		return
	}
	booking, err := h.Service.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, BookingResponse{Booking: *booking})
}

func (h *BookingHandler) ValidateBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.Validation.Validate(r.Context(), mux.Vars(r)["id"], h.clock())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
