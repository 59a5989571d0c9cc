package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
)

// Renderer turns assembled contract data into a PDF byte stream. Rendering
// is deterministic: the document's creation date is pinned to
// Data.GeneratedAt, so identical input yields identical bytes.
type Renderer struct {
	printer *message.Printer
}

func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

func (r *Renderer) Render(data Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(data.GeneratedAt)
	pdf.SetModificationDate(data.GeneratedAt)
	pdf.SetTitle(fmt.Sprintf("Rental contract %s", data.ContractID), false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "VEHICLE RENTAL CONTRACT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Contract %s - generated %s",
		data.ContractID, data.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.section(pdf, "Tenant")
	r.row(pdf, "Name", data.Client.FullName)
	r.row(pdf, "Passport", data.Client.PassportNumber)
	r.row(pdf, "License", data.Client.LicenseNumber)
	r.row(pdf, "Address", data.Client.Address)
	r.row(pdf, "Phone", data.Client.Phone)

	if lease := data.Lease; lease.ExtraDriver != nil {
		r.section(pdf, "Extra driver")
		r.row(pdf, "Name", deref(lease.ExtraDriver.Name))
		r.row(pdf, "Passport", deref(lease.ExtraDriver.PassportNumber))
		r.row(pdf, "License", deref(lease.ExtraDriver.LicenseNumber))
	}

	r.section(pdf, "Vehicle")
	r.row(pdf, "Vehicle", fmt.Sprintf("%s %s (%d)", data.Vehicle.Brand, data.Vehicle.Model, data.Vehicle.Year))
	r.row(pdf, "Color", data.Vehicle.Color)
	r.row(pdf, "Plate", data.Vehicle.Plate)

	r.section(pdf, "Rental terms")
	r.row(pdf, "Delivery date", data.Reservation.StartDate.Format("2006-01-02"))
	r.row(pdf, "Return date", data.Reservation.ReturnDate.Format("2006-01-02"))
	r.row(pdf, "Delivery city", deref(data.Lease.DeliveryCity))
	r.row(pdf, "Rental days", fmt.Sprintf("%d", data.Reservation.RentalDays))
	r.row(pdf, "Daily price", r.amount(data.Reservation.PricePerDay))
	r.row(pdf, "Total", r.amount(data.Reservation.Total))

	if p := data.Lease.Pricing; p != nil {
		if p.DepositAmount != nil {
			r.row(pdf, "Deposit", r.amount(*p.DepositAmount))
		}

		if p.MisusePenalty != nil {
			r.row(pdf, "Misuse penalty", r.amount(*p.MisusePenalty))
		}
	}

	r.section(pdf, "Vehicle condition")

	if data.StatusSheet.FuelDelivery != nil {
		r.row(pdf, "Fuel at delivery", fmt.Sprintf("%d%%", *data.StatusSheet.FuelDelivery))
	}

	if data.StatusSheet.FuelReturn != nil {
		r.row(pdf, "Fuel at return", fmt.Sprintf("%d%%", *data.StatusSheet.FuelReturn))
	}

	r.checklist(pdf, "Documentation", documentationItems(data.StatusSheet.Documentation))
	r.checklist(pdf, "Exterior", exteriorItems(data.StatusSheet.Exterior))
	r.checklist(pdf, "Interior", interiorItems(data.StatusSheet.Interior))

	if data.StatusSheet.Notes != nil && *data.StatusSheet.Notes != "" {
		r.row(pdf, "Notes", *data.StatusSheet.Notes)
	}

	if data.Lease.Observations != nil && *data.Lease.Observations != "" {
		r.section(pdf, "Observations")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, *data.Lease.Observations, "", "L", false)
	}

	r.signatures(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering contract pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (r *Renderer) row(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

type checkItem struct {
	label   string
	checked *bool
}

func (r *Renderer) checklist(pdf *fpdf.Fpdf, title string, items []checkItem) {
	any := false

	for _, it := range items {
		if it.checked != nil {
			any = true
			break
		}
	}

	if !any {
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	for _, it := range items {
		if it.checked == nil {
			continue
		}

		mark := "[ ]"
		if *it.checked {
			mark = "[x]"
		}

		pdf.CellFormat(60, 5, fmt.Sprintf("%s %s", mark, it.label), "", 1, "L", false, 0, "")
	}
}

func (r *Renderer) signatures(pdf *fpdf.Fpdf, data Data) {
	r.section(pdf, "Signatures")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(85, 6, "_______________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(85, 6, "_______________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(85, 5, "Tenant", "", 0, "C", false, 0, "")
	pdf.CellFormat(85, 5, "Lessor", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)

	tenantRef := deref(data.Lease.TenantSignatureRef)
	ownerRef := deref(data.Lease.OwnerSignatureRef)

	if tenantRef != "" || ownerRef != "" {
		pdf.CellFormat(85, 4, tenantRef, "", 0, "C", false, 0, "")
		pdf.CellFormat(85, 4, ownerRef, "", 1, "C", false, 0, "")
	}
}

// amount formats cents as a dollar amount with thousands separators.
func (r *Renderer) amount(cents int64) string {
	return r.printer.Sprintf("$%.2f", float64(cents)/100)
}

func documentationItems(d *contract.DocumentationChecklist) []checkItem {
	if d == nil {
		return nil
	}

	return []checkItem{
		{"Circulation card", d.CirculationCard},
		{"Insurance card", d.InsuranceCard},
		{"Plates", d.Plates},
		{"Spare tire", d.SpareTire},
		{"Tools", d.Tools},
	}
}

func exteriorItems(e *contract.ExteriorInspection) []checkItem {
	if e == nil {
		return nil
	}

	return []checkItem{
		{"Hood", e.Hood},
		{"Doors", e.Doors},
		{"Trunk", e.Trunk},
		{"Lights", e.Lights},
		{"Tires", e.Tires},
		{"Windshield", e.Windshield},
		{"Bodywork", e.Bodywork},
		{"Mirrors", e.Mirrors},
	}
}

func interiorItems(i *contract.InteriorInspection) []checkItem {
	if i == nil {
		return nil
	}

	return []checkItem{
		{"Seats", i.Seats},
		{"Dashboard", i.Dashboard},
		{"Radio", i.Radio},
		{"Air conditioning", i.AirConditioning},
		{"Mats", i.Mats},
		{"Upholstery", i.Upholstery},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
