package converter

import (
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/pkg/pgconv"
)

func PropertyFromRow(row pgq.Property) (*property.Property, error) {
	basePrice, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, errs.Wrap(err, "property base_price")
	}
	currency, err := money.ParseCurrency(row.Currency)
	if err != nil {
		return nil, err
	}
	location, err := geo.NewPoint(row.Latitude, row.Longitude)
	if err != nil {
		return nil, err
	}
	// Unknown priorities fall back to the default inside ReconstructProperty.
	priority := property.PromotionPriority(row.PromotionPriority)
	return property.ReconstructProperty(
		row.ID,
		row.HostID,
		pgconv.UUIDPtrFromPgtype(row.PropertyTypeID),
		row.Title,
		basePrice,
		currency,
		location,
		priority,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SpecialPriceFromRow(row pgq.SpecialPrice) (*property.SpecialPrice, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrap(err, "special price price_per_night")
	}
	return property.ReconstructSpecialPrice(
		row.ID,
		row.PropertyID,
		price,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		row.Active,
	)
}
