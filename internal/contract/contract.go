package contract

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
)

var (
	ErrNotFound          = errors.New("contract not found")
	ErrInvalidStatus     = errors.New("invalid contract status")
	ErrTerminalStatus    = errors.New("contract is in a terminal status")
	ErrReservationClosed = errors.New("reservation is already completed or canceled")
)

// Status represents the lifecycle state of a contract. Finished and
// canceled are terminal.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
	StatusCanceled Status = "canceled"
)

// Transitions is the legal contract state machine.
var Transitions = lifecycle.NewMachine(map[Status][]Status{
	StatusActive: {StatusFinished, StatusCanceled},
})

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusFinished, StatusCanceled:
		return true
	}

	return false
}

// GenerationStatus tracks the asynchronous PDF rendering of the lease
// document. Generation failures are recorded here, never surfaced as a
// failure of the owning create or update call.
type GenerationStatus string

const (
	GenerationPending GenerationStatus = "pending"
	GenerationReady   GenerationStatus = "ready"
	GenerationFailed  GenerationStatus = "failed"
)

// Contract is the rental agreement bound 1:1 to a reservation. The contract
// record is the source of truth; the rendered PDF is a projection of it.
type Contract struct {
	ID               uuid.UUID
	ReservationID    uuid.UUID
	Status           Status
	StartDate        time.Time
	EndDate          *time.Time // stamped on terminal transition
	StatusSheet      StatusSheet
	Lease            Lease
	Documents        Documents
	GenerationStatus GenerationStatus
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Documents holds references to generated artifacts. LeasePDF always points
// at the most recent render; regeneration overwrites it.
type Documents struct {
	LeasePDF string `json:"lease_pdf,omitempty"`
}

// StatusSheet is the delivery/return vehicle-condition inspection. All
// fields are optional so the sheet can be filled in incrementally; a partial
// update never erases sibling sections.
type StatusSheet struct {
	Documentation *DocumentationChecklist `json:"documentation,omitempty"`
	Exterior      *ExteriorInspection     `json:"exterior,omitempty"`
	Interior      *InteriorInspection     `json:"interior,omitempty"`
	FuelDelivery  *int                    `json:"fuel_delivery,omitempty"` // percent
	FuelReturn    *int                    `json:"fuel_return,omitempty"`   // percent
	SignatureRef  *string                 `json:"signature_ref,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

type DocumentationChecklist struct {
	CirculationCard *bool `json:"circulation_card,omitempty"`
	InsuranceCard   *bool `json:"insurance_card,omitempty"`
	Plates          *bool `json:"plates,omitempty"`
	SpareTire       *bool `json:"spare_tire,omitempty"`
	Tools           *bool `json:"tools,omitempty"`
}

type ExteriorInspection struct {
	Hood       *bool `json:"hood,omitempty"`
	Doors      *bool `json:"doors,omitempty"`
	Trunk      *bool `json:"trunk,omitempty"`
	Lights     *bool `json:"lights,omitempty"`
	Tires      *bool `json:"tires,omitempty"`
	Windshield *bool `json:"windshield,omitempty"`
	Bodywork   *bool `json:"bodywork,omitempty"`
	Mirrors    *bool `json:"mirrors,omitempty"`
}

type InteriorInspection struct {
	Seats           *bool `json:"seats,omitempty"`
	Dashboard       *bool `json:"dashboard,omitempty"`
	Radio           *bool `json:"radio,omitempty"`
	AirConditioning *bool `json:"air_conditioning,omitempty"`
	Mats            *bool `json:"mats,omitempty"`
	Upholstery      *bool `json:"upholstery,omitempty"`
}

// Lease is the structured financial and party-identity terms of the rental.
type Lease struct {
	TenantName         *string      `json:"tenant_name,omitempty"`
	TenantProfession   *string      `json:"tenant_profession,omitempty"`
	TenantAddress      *string      `json:"tenant_address,omitempty"`
	PassportNumber     *string      `json:"passport_number,omitempty"`
	LicenseNumber      *string      `json:"license_number,omitempty"`
	ExtraDriver        *ExtraDriver `json:"extra_driver,omitempty"`
	Pricing            *Pricing     `json:"pricing,omitempty"`
	DeliveryCity       *string      `json:"delivery_city,omitempty"`
	DeliveryDate       *time.Time   `json:"delivery_date,omitempty"`
	ReturnDate         *time.Time   `json:"return_date,omitempty"`
	TenantSignatureRef *string      `json:"tenant_signature_ref,omitempty"`
	OwnerSignatureRef  *string      `json:"owner_signature_ref,omitempty"`
	Observations       *string      `json:"observations,omitempty"`
}

type ExtraDriver struct {
	Name           *string `json:"name,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
	LicenseNumber  *string `json:"license_number,omitempty"`
}

// Pricing amounts are in cents.
type Pricing struct {
	DailyPrice    *int64 `json:"daily_price,omitempty"`
	TotalAmount   *int64 `json:"total_amount,omitempty"`
	RentalDays    *int64 `json:"rental_days,omitempty"`
	DepositAmount *int64 `json:"deposit_amount,omitempty"`
	MisusePenalty *int64 `json:"misuse_penalty,omitempty"`
}

// Merge applies the non-nil fields of patch onto the sheet, recursing into
// nested sections so that patching one field never drops its siblings.
func (s *StatusSheet) Merge(patch *StatusSheet) {
	if patch == nil {
		return
	}

	if patch.Documentation != nil {
		if s.Documentation == nil {
			s.Documentation = &DocumentationChecklist{}
		}

		s.Documentation.merge(patch.Documentation)
	}

	if patch.Exterior != nil {
		if s.Exterior == nil {
			s.Exterior = &ExteriorInspection{}
		}

		s.Exterior.merge(patch.Exterior)
	}

	if patch.Interior != nil {
		if s.Interior == nil {
			s.Interior = &InteriorInspection{}
		}

		s.Interior.merge(patch.Interior)
	}

	mergeField(&s.FuelDelivery, patch.FuelDelivery)
	mergeField(&s.FuelReturn, patch.FuelReturn)
	mergeField(&s.SignatureRef, patch.SignatureRef)
	mergeField(&s.Notes, patch.Notes)
}

func (d *DocumentationChecklist) merge(patch *DocumentationChecklist) {
	mergeField(&d.CirculationCard, patch.CirculationCard)
	mergeField(&d.InsuranceCard, patch.InsuranceCard)
	mergeField(&d.Plates, patch.Plates)
	mergeField(&d.SpareTire, patch.SpareTire)
	mergeField(&d.Tools, patch.Tools)
}

func (e *ExteriorInspection) merge(patch *ExteriorInspection) {
	mergeField(&e.Hood, patch.Hood)
	mergeField(&e.Doors, patch.Doors)
	mergeField(&e.Trunk, patch.Trunk)
	mergeField(&e.Lights, patch.Lights)
	mergeField(&e.Tires, patch.Tires)
	mergeField(&e.Windshield, patch.Windshield)
	mergeField(&e.Bodywork, patch.Bodywork)
	mergeField(&e.Mirrors, patch.Mirrors)
}

func (i *InteriorInspection) merge(patch *InteriorInspection) {
	mergeField(&i.Seats, patch.Seats)
	mergeField(&i.Dashboard, patch.Dashboard)
	mergeField(&i.Radio, patch.Radio)
	mergeField(&i.AirConditioning, patch.AirConditioning)
	mergeField(&i.Mats, patch.Mats)
	mergeField(&i.Upholstery, patch.Upholstery)
}

// Merge applies the non-nil fields of patch onto the lease.
func (l *Lease) Merge(patch *Lease) {
	if patch == nil {
		return
	}

	mergeField(&l.TenantName, patch.TenantName)
	mergeField(&l.TenantProfession, patch.TenantProfession)
	mergeField(&l.TenantAddress, patch.TenantAddress)
	mergeField(&l.PassportNumber, patch.PassportNumber)
	mergeField(&l.LicenseNumber, patch.LicenseNumber)

	if patch.ExtraDriver != nil {
		if l.ExtraDriver == nil {
			l.ExtraDriver = &ExtraDriver{}
		}

		mergeField(&l.ExtraDriver.Name, patch.ExtraDriver.Name)
		mergeField(&l.ExtraDriver.PassportNumber, patch.ExtraDriver.PassportNumber)
		mergeField(&l.ExtraDriver.LicenseNumber, patch.ExtraDriver.LicenseNumber)
	}

	if patch.Pricing != nil {
		if l.Pricing == nil {
			l.Pricing = &Pricing{}
		}

		mergeField(&l.Pricing.DailyPrice, patch.Pricing.DailyPrice)
		mergeField(&l.Pricing.TotalAmount, patch.Pricing.TotalAmount)
		mergeField(&l.Pricing.RentalDays, patch.Pricing.RentalDays)
		mergeField(&l.Pricing.DepositAmount, patch.Pricing.DepositAmount)
		mergeField(&l.Pricing.MisusePenalty, patch.Pricing.MisusePenalty)
	}

	mergeField(&l.DeliveryCity, patch.DeliveryCity)
	mergeField(&l.DeliveryDate, patch.DeliveryDate)
	mergeField(&l.ReturnDate, patch.ReturnDate)
	mergeField(&l.TenantSignatureRef, patch.TenantSignatureRef)
	mergeField(&l.OwnerSignatureRef, patch.OwnerSignatureRef)
	mergeField(&l.Observations, patch.Observations)
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
