package reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
)

type reservationResponse struct {
	ID          uuid.UUID          `json:"id"`
	ClientID    uuid.UUID          `json:"client_id"`
	VehicleID   uuid.UUID          `json:"vehicle_id"`
	StartDate   string             `json:"start_date"`
	ReturnDate  string             `json:"return_date"`
	Status      reservation.Status `json:"status"`
	PricePerDay int64              `json:"price_per_day"`
	RentalDays  int64              `json:"rental_days"`
	Total       int64              `json:"total"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(res *reservation.Reservation) reservationResponse {
	return reservationResponse{
		ID:          res.ID,
		ClientID:    res.ClientID,
		VehicleID:   res.VehicleID,
		StartDate:   res.StartDate.Format(time.DateOnly),
		ReturnDate:  res.ReturnDate.Format(time.DateOnly),
		Status:      res.Status,
		PricePerDay: res.PricePerDay,
		RentalDays:  reservation.RentalDays(res.StartDate, res.ReturnDate),
		Total:       res.Total,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

func toResponseList(reservations []*reservation.Reservation) []reservationResponse {
	resp := make([]reservationResponse, len(reservations))
	for i, res := range reservations {
		resp[i] = toResponse(res)
	}

	return resp
}
