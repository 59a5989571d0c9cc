package reservation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
)

type Handler struct {
	svc      *reservation.Service
	validate *validator.Validate
}

func NewHandler(svc *reservation.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/vehicle/{vehicleID}", h.listByVehicle)
	r.Get("/status/{status}", h.listByStatus)
}

type createReservationRequest struct {
	ClientID    uuid.UUID `json:"client_id" validate:"required"`
	VehicleID   uuid.UUID `json:"vehicle_id" validate:"required"`
	StartDate   string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	ReturnDate  string    `json:"return_date" validate:"required,datetime=2006-01-02"`
	PricePerDay int64     `json:"price_per_day" validate:"omitempty,gt=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=pending active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	ret, _ := time.Parse(time.DateOnly, req.ReturnDate)

	res, err := h.svc.Create(r.Context(), reservation.CreateParams{
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		StartDate:   start,
		ReturnDate:  ret,
		PricePerDay: req.PricePerDay,
		Status:      reservation.Status(req.Status),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := reservation.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := reservation.Status(s)
		filter.Status = &st
	}

	h.respondList(w, r, filter)
}

func (h *Handler) listByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}

	h.respondList(w, r, reservation.ListFilter{VehicleID: &vehicleID})
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request) {
	status := reservation.Status(chi.URLParam(r, "status"))
	if !status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	h.respondList(w, r, reservation.ListFilter{Status: &status})
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, filter reservation.ListFilter) {
	reservations, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(reservations)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateReservationRequest struct {
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	VehicleID   *uuid.UUID `json:"vehicle_id,omitempty"`
	StartDate   *string    `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate  *string    `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PricePerDay *int64     `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending active completed canceled"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := reservation.UpdateParams{
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		PricePerDay: req.PricePerDay,
	}

	if req.StartDate != nil {
		t, _ := time.Parse(time.DateOnly, *req.StartDate)
		params.StartDate = &t
	}

	if req.ReturnDate != nil {
		t, _ := time.Parse(time.DateOnly, *req.ReturnDate)
		params.ReturnDate = &t
	}

	if req.Status != nil {
		s := reservation.Status(*req.Status)
		params.Status = &s
	}

	res, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reservation.ErrNotFound),
		errors.Is(err, reservation.ErrClientNotFound),
		errors.Is(err, reservation.ErrVehicleNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, reservation.ErrInvalidRange),
		errors.Is(err, reservation.ErrInvalidPrice),
		errors.Is(err, reservation.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, reservation.ErrConflict),
		errors.Is(err, reservation.ErrContractExists),
		errors.Is(err, lifecycle.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("reservation request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
