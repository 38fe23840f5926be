package converter

import (
	"hosteed/internal/domain/promotion"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/pkg/pgconv"
)

func PromotionFromRow(row pgq.Promotion) (*promotion.Promotion, error) {
	pct, err := pgconv.DecimalFromNumeric(row.DiscountPercentage)
	if err != nil {
		return nil, errs.Wrap(err, "promotion discount_percentage")
	}
	discount, err := promotion.NewDiscount(pct)
	if err != nil {
		return nil, err
	}
	period, err := promotion.NewPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}
	return promotion.ReconstructPromotion(
		row.ID,
		row.PropertyID,
		discount,
		period,
		row.Active,
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PromotionsFromRows(rows []pgq.Promotion) ([]*promotion.Promotion, error) {
	out := make([]*promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := PromotionFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func PromotionToCreateParams(p *promotion.Promotion) pgq.CreatePromotionParams {
	return pgq.CreatePromotionParams{
		ID:                 p.ID(),
		PropertyID:         p.PropertyID(),
		DiscountPercentage: pgconv.DecimalToNumeric(p.Discount().Percentage()),
		StartDate:          pgconv.DateToPgtype(p.Period().Start()),
		EndDate:            pgconv.DateToPgtype(p.Period().End()),
		Active:             p.IsActive(),
		CreatedBy:          p.CreatedBy(),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
