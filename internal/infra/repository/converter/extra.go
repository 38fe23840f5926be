package converter

import (
	"hosteed/internal/domain/extra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/pkg/pgconv"
)

func ExtraFromRow(row pgq.Extra) (*extra.Extra, error) {
	eur, err := pgconv.DecimalFromNumeric(row.PriceEur)
	if err != nil {
		return nil, errs.Wrap(err, "extra price_eur")
	}
	mga, err := pgconv.DecimalFromNumeric(row.PriceMga)
	if err != nil {
		return nil, errs.Wrap(err, "extra price_mga")
	}
	pt, err := extra.NewPricingType(row.PricingType)
	if err != nil {
		return nil, err
	}
	return extra.ReconstructExtra(
		row.ID,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Description),
		eur,
		mga,
		pt,
		pgconv.UUIDPtrFromPgtype(row.OwnerID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ExtraToCreateParams(e *extra.Extra) pgq.CreateExtraParams {
	return pgq.CreateExtraParams{
		ID:          e.ID(),
		Name:        e.Name(),
		Description: pgconv.StringPtrToPgtype(e.Description()),
		PriceEur:    pgconv.DecimalToNumeric(e.PriceEUR()),
		PriceMga:    pgconv.DecimalToNumeric(e.PriceMGA()),
		PricingType: e.PricingType().String(),
		OwnerID:     pgconv.UUIDPtrToPgtype(e.OwnerID()),
	}
}
