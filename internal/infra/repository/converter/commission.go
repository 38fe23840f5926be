package converter

import (
	"hosteed/internal/domain/commission"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func CommissionRuleFromRow(row pgq.CommissionRule) (*commission.Rule, error) {
	var rates commission.Rates
	fields := []struct {
		name string
		src  pgtype.Numeric
		dst  *decimal.Decimal
	}{
		{"host_commission_rate", row.HostCommissionRate, &rates.HostRate},
		{"host_commission_fixed", row.HostCommissionFixed, &rates.HostFixed},
		{"client_commission_rate", row.ClientCommissionRate, &rates.ClientRate},
		{"client_commission_fixed", row.ClientCommissionFixed, &rates.ClientFixed},
	}
	for _, f := range fields {
		v, err := pgconv.DecimalFromNumeric(f.src)
		if err != nil {
			return nil, errs.Wrap(err, "commission rule "+f.name)
		}
		*f.dst = v
	}
	return commission.ReconstructRule(
		row.ID,
		row.Title,
		rates,
		pgconv.UUIDPtrFromPgtype(row.PropertyTypeID),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CommissionRulesFromRows(rows []pgq.CommissionRule) ([]*commission.Rule, error) {
	out := make([]*commission.Rule, 0, len(rows))
	for _, row := range rows {
		r, err := CommissionRuleFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func CommissionRuleToCreateParams(r *commission.Rule) pgq.CreateCommissionRuleParams {
	rates := r.Rates()
	return pgq.CreateCommissionRuleParams{
		ID:                    r.ID(),
		Title:                 r.Title(),
		HostCommissionRate:    pgconv.DecimalToNumeric(rates.HostRate),
		HostCommissionFixed:   pgconv.DecimalToNumeric(rates.HostFixed),
		ClientCommissionRate:  pgconv.DecimalToNumeric(rates.ClientRate),
		ClientCommissionFixed: pgconv.DecimalToNumeric(rates.ClientFixed),
		PropertyTypeID:        pgconv.UUIDPtrToPgtype(r.PropertyTypeID()),
		Active:                r.IsActive(),
		CreatedAt:             pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:             pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func CommissionRuleToUpdateParams(r *commission.Rule) pgq.UpdateCommissionRuleParams {
	rates := r.Rates()
	return pgq.UpdateCommissionRuleParams{
		ID:                    r.ID(),
		Title:                 r.Title(),
		HostCommissionRate:    pgconv.DecimalToNumeric(rates.HostRate),
		HostCommissionFixed:   pgconv.DecimalToNumeric(rates.HostFixed),
		ClientCommissionRate:  pgconv.DecimalToNumeric(rates.ClientRate),
		ClientCommissionFixed: pgconv.DecimalToNumeric(rates.ClientFixed),
		Active:                r.IsActive(),
		UpdatedAt:             pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
