package contract

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
)

type Handler struct {
	svc      *contract.Service
	validate *validator.Validate
}

func NewHandler(svc *contract.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pdf", h.regeneratePDF)
}

type createContractRequest struct {
	ReservationID uuid.UUID             `json:"reservation_id" validate:"required"`
	Status        string                `json:"status" validate:"omitempty,oneof=active finished canceled"`
	StatusSheet   *contract.StatusSheet `json:"status_sheet,omitempty"`
	Lease         *contract.Lease       `json:"lease,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), contract.CreateParams{
		ReservationID: req.ReservationID,
		Status:        contract.Status(req.Status),
		StatusSheet:   req.StatusSheet,
		Lease:         req.Lease,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(contracts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateContractRequest struct {
	Status      *string               `json:"status,omitempty" validate:"omitempty,oneof=active finished canceled"`
	StatusSheet *contract.StatusSheet `json:"status_sheet,omitempty"`
	Lease       *contract.Lease       `json:"lease,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := contract.UpdateParams{
		StatusSheet: req.StatusSheet,
		Lease:       req.Lease,
	}

	if req.Status != nil {
		s := contract.Status(*req.Status)
		params.Status = &s
	}

	c, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) regeneratePDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.RegeneratePDF(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(toPDFResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contract.ErrNotFound),
		errors.Is(err, reservation.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, contract.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, contract.ErrTerminalStatus),
		errors.Is(err, contract.ErrReservationClosed),
		errors.Is(err, lifecycle.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("contract request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
