// Package pricing computes shipment amounts from the tariff catalog.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

// PriceShipment returns baseTariff + weight*weightTariff + volume*volumeTariff
// rounded to cents.
func PriceShipment(dest *catalog.Destination, svc *catalog.ServiceType, weight, volume decimal.Decimal) (decimal.Decimal, error) {
	if dest == nil {
		return decimal.Zero, apperr.Validation("destination is required for pricing")
	}

	if svc == nil {
		return decimal.Zero, apperr.Validation("service type is required for pricing")
	}

	if weight.IsNegative() {
		return decimal.Zero, apperr.Validation("weight must be >= 0, got %s", weight)
	}

	if volume.IsNegative() {
		return decimal.Zero, apperr.Validation("volume must be >= 0, got %s", volume)
	}

	if dest.BaseTariff.IsNegative() || svc.WeightTariff.IsNegative() || svc.VolumeTariff.IsNegative() {
		return decimal.Zero, apperr.Validation("tariffs must be >= 0")
	}

	amount := dest.BaseTariff.
		Add(weight.Mul(svc.WeightTariff)).
		Add(volume.Mul(svc.VolumeTariff))

	return money.Round(amount), nil
}

// EstimateDelivery returns the expected delivery date for a shipment accepted on from.
func EstimateDelivery(from time.Time, svc *catalog.ServiceType) time.Time {
	y, m, d := from.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())

	if svc == nil {
		return day
	}

	return day.AddDate(0, 0, svc.DeliveryTimeDays)
}

type Quote struct {
	Amount            decimal.Decimal
	EstimatedDelivery time.Time
}

// QuoteShipment prices a prospective shipment without persisting anything.
func QuoteShipment(dest *catalog.Destination, svc *catalog.ServiceType, weight, volume decimal.Decimal, from time.Time) (*Quote, error) {
	amount, err := PriceShipment(dest, svc, weight, volume)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Amount:            amount,
		EstimatedDelivery: EstimateDelivery(from, svc),
	}, nil
}
