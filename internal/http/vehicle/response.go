package vehicle

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

type vehicleResponse struct {
	ID          uuid.UUID      `json:"id"`
	Brand       string         `json:"brand"`
	Model       string         `json:"model"`
	Year        int            `json:"year"`
	Color       string         `json:"color"`
	Plate       string         `json:"plate"`
	PricePerDay int64          `json:"price_per_day"`
	Status      vehicle.Status `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(veh *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:          veh.ID,
		Brand:       veh.Brand,
		Model:       veh.Model,
		Year:        veh.Year,
		Color:       veh.Color,
		Plate:       veh.Plate,
		PricePerDay: veh.PricePerDay,
		Status:      veh.Status,
		CreatedAt:   veh.CreatedAt,
		UpdatedAt:   veh.UpdatedAt,
	}
}

func toResponseList(vehicles []*vehicle.Vehicle) []vehicleResponse {
	resp := make([]vehicleResponse, len(vehicles))
	for i, veh := range vehicles {
		resp[i] = toResponse(veh)
	}

	return resp
}
