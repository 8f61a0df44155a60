package api

import (
	"net/http"
	"time"

	"condopark/internal/auth"
	"condopark/internal/entities"
	apperrors "condopark/internal/errors"
	"condopark/internal/service"

	"github.com/gorilla/mux"
)

type SlotHandler struct {
	Service *service.SlotService
}

func NewSlotHandler(svc *service.SlotService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

func (h *SlotHandler) RegisterSlot(w http.ResponseWriter, r *http.Request) {
	owner, _ := auth.IdentityFrom(r.Context())
	var req RegisterSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = owner.Tenant()
	}
	slot, err := h.Service.RegisterSlot(r.Context(), owner, tenantID, req.SlotDescriptor)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, SlotResponse{Slot: *slot})
}

func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.Service.GetSlot(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SlotResponse{Slot: *slot})
}

// ListSlots accepts tenantId, startTime and endTime query parameters. The two
// times must be given together, in RFC 3339.
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entities.SlotFilter{TenantID: q.Get("tenantId")}

	startRaw, endRaw := q.Get("startTime"), q.Get("endTime")
	if startRaw != "" || endRaw != "" {
		iv, err := parseInterval(startRaw, endRaw)
		if err != nil {
			respondError(w, r, err)
			return
		}
		filter.Interval = &iv
	}

	slots, err := h.Service.ListSlots(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SlotsResponse{Slots: slots})
}

func parseInterval(startRaw, endRaw string) (entities.Interval, error) {
	if startRaw == "" || endRaw == "" {
		return entities.Interval{}, apperrors.NewValidationError("interval", "startTime and endTime must be given together")
	}
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return entities.Interval{}, apperrors.NewValidationError("startTime", "must be an RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return entities.Interval{}, apperrors.NewValidationError("endTime", "must be an RFC 3339 timestamp")
	}
	return entities.NewInterval(start, end)
}
