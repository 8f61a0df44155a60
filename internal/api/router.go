package api

import (
	"net/http"

	"condopark/internal/auth"
	"condopark/internal/entities"
	"condopark/internal/service"
	"condopark/internal/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Services struct {
	Auth       service.AuthService
	Slots      *service.SlotService
	Bookings   *service.BookingService
	Matcher    *service.Matcher
	Validation *service.ValidationService
	Tokens     *auth.TokenIssuer
	Clock      service.Clock
}

func NewRouter(s Services) *mux.Router {
	authHandler := NewAuthHandler(s.Auth)
	slotHandler := NewSlotHandler(s.Slots)
	bookingHandler := NewBookingHandler(s.Bookings, s.Matcher, s.Validation, s.Clock)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Authenticated endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Authenticate(s.Tokens))

	owner := auth.RequireRole(entities.RoleOwner)
	guard := auth.RequireRole(entities.RoleGuard)
	parker := auth.RequireRole(entities.RoleParker)

	api.HandleFunc("/slots", slotHandler.ListSlots).Methods("GET")
	api.HandleFunc("/slots/{id}", slotHandler.GetSlot).Methods("GET")
	api.Handle("/slots", owner(http.HandlerFunc(slotHandler.RegisterSlot))).Methods("POST")

	api.Handle("/bookings", parker(http.HandlerFunc(bookingHandler.CreateBooking))).Methods("POST")
	api.Handle("/bookings/mine", parker(http.HandlerFunc(bookingHandler.ListMyBookings))).Methods("GET")
	api.Handle("/bookings", owner(http.HandlerFunc(bookingHandler.ListAllBookings))).Methods("GET")
	api.Handle("/bookings/{id}/status", guard(http.HandlerFunc(bookingHandler.UpdateStatus))).Methods("PUT")
	api.Handle("/bookings/{id}/validate", guard(http.HandlerFunc(bookingHandler.ValidateBooking))).Methods("GET")

	return r
}

// WithMiddleware wraps the router with panic recovery, CORS and an access log.
func WithMiddleware(r http.Handler, allowedOrigins []string) http.Handler {
	h := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return handlers.CombinedLoggingHandler(utils.Logger.Writer(), h)
}
