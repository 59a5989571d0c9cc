package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
)

type contractResponse struct {
	ID               uuid.UUID                 `json:"id"`
	ReservationID    uuid.UUID                 `json:"reservation_id"`
	Status           contract.Status           `json:"status"`
	StartDate        string                    `json:"start_date"`
	EndDate          *string                   `json:"end_date,omitempty"`
	StatusSheet      contract.StatusSheet      `json:"status_sheet"`
	Lease            contract.Lease            `json:"lease"`
	LeasePDF         string                    `json:"lease_pdf,omitempty"`
	GenerationStatus contract.GenerationStatus `json:"generation_status"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        *time.Time                `json:"updated_at,omitempty"`
}

type pdfResponse struct {
	PDFURL           string                    `json:"pdf_url,omitempty"`
	GenerationStatus contract.GenerationStatus `json:"generation_status"`
}

func toResponse(c *contract.Contract) contractResponse {
	resp := contractResponse{
		ID:               c.ID,
		ReservationID:    c.ReservationID,
		Status:           c.Status,
		StartDate:        c.StartDate.Format(time.DateOnly),
		StatusSheet:      c.StatusSheet,
		Lease:            c.Lease,
		LeasePDF:         c.Documents.LeasePDF,
		GenerationStatus: c.GenerationStatus,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	if c.EndDate != nil {
		d := c.EndDate.Format(time.DateOnly)
		resp.EndDate = &d
	}

	return resp
}

func toResponseList(contracts []*contract.Contract) []contractResponse {
	resp := make([]contractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toResponse(c)
	}

	return resp
}

func toPDFResponse(c *contract.Contract) pdfResponse {
	return pdfResponse{
		PDFURL:           c.Documents.LeasePDF,
		GenerationStatus: c.GenerationStatus,
	}
}
