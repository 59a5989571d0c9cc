package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
)

func TestStatusSheetMerge(t *testing.T) {
	sheet := contract.StatusSheet{
		Exterior: &contract.ExteriorInspection{
			Hood:  ptr(true),
			Doors: ptr(true),
		},
		FuelDelivery: ptr(80),
	}

	// Recording the return fuel level must not touch the delivery inspection.
	sheet.Merge(&contract.StatusSheet{FuelReturn: ptr(55)})

	require.NotNil(t, sheet.Exterior)
	assert.Equal(t, true, *sheet.Exterior.Hood)
	assert.Equal(t, true, *sheet.Exterior.Doors)
	assert.Equal(t, 80, *sheet.FuelDelivery)
	assert.Equal(t, 55, *sheet.FuelReturn)
}

func TestStatusSheetMerge_NestedSiblingsPreserved(t *testing.T) {
	sheet := contract.StatusSheet{
		Interior: &contract.InteriorInspection{
			Seats: ptr(true),
			Radio: ptr(true),
		},
	}

	sheet.Merge(&contract.StatusSheet{
		Interior: &contract.InteriorInspection{Radio: ptr(false)},
	})

	assert.Equal(t, true, *sheet.Interior.Seats)
	assert.Equal(t, false, *sheet.Interior.Radio)
}

func TestStatusSheetMerge_NilPatch(t *testing.T) {
	sheet := contract.StatusSheet{Notes: ptr("scratch on rear bumper")}
	sheet.Merge(nil)

	assert.Equal(t, "scratch on rear bumper", *sheet.Notes)
}

func TestLeaseMerge(t *testing.T) {
	lease := contract.Lease{
		TenantName: ptr("Ana Martinez"),
		Pricing: &contract.Pricing{
			DailyPrice: ptr(int64(3500)),
			RentalDays: ptr(int64(3)),
		},
	}

	lease.Merge(&contract.Lease{
		Pricing: &contract.Pricing{DepositAmount: ptr(int64(10000))},
		ExtraDriver: &contract.ExtraDriver{
			Name: ptr("Luis Martinez"),
		},
	})

	assert.Equal(t, "Ana Martinez", *lease.TenantName)
	assert.Equal(t, int64(3500), *lease.Pricing.DailyPrice)
	assert.Equal(t, int64(3), *lease.Pricing.RentalDays)
	assert.Equal(t, int64(10000), *lease.Pricing.DepositAmount)
	require.NotNil(t, lease.ExtraDriver)
	assert.Equal(t, "Luis Martinez", *lease.ExtraDriver.Name)
}

func TestTransitions(t *testing.T) {
	assert.True(t, contract.Transitions.Can(contract.StatusActive, contract.StatusFinished))
	assert.True(t, contract.Transitions.Can(contract.StatusActive, contract.StatusCanceled))
	assert.False(t, contract.Transitions.Can(contract.StatusFinished, contract.StatusActive))
	assert.False(t, contract.Transitions.Can(contract.StatusCanceled, contract.StatusActive))

	assert.False(t, contract.Transitions.Terminal(contract.StatusActive))
	assert.True(t, contract.Transitions.Terminal(contract.StatusFinished))
	assert.True(t, contract.Transitions.Terminal(contract.StatusCanceled))
}
