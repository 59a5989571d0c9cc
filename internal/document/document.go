// Package document renders rental contracts to PDF and publishes the
// artifacts. The contract record is the source of truth; the PDF is a
// projection of it and can be regenerated at any time.
package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
)

// Data is everything a render needs, assembled up front so the renderer
// itself stays a pure function of its input.
type Data struct {
	ContractID  uuid.UUID
	Status      contract.Status
	GeneratedAt time.Time
	Client      ClientSummary
	Vehicle     VehicleSummary
	Reservation ReservationSummary
	StatusSheet contract.StatusSheet
	Lease       contract.Lease
}

type ClientSummary struct {
	FullName       string
	PassportNumber string
	LicenseNumber  string
	Address        string
	Phone          string
}

type VehicleSummary struct {
	Brand string
	Model string
	Year  int
	Color string
	Plate string
}

type ReservationSummary struct {
	StartDate   time.Time
	ReturnDate  time.Time
	RentalDays  int64
	PricePerDay int64 // cents
	Total       int64 // cents
}
