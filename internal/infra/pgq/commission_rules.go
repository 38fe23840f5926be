package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const commissionRuleColumns = `
	id, title, host_commission_rate, host_commission_fixed, client_commission_rate,
	client_commission_fixed, property_type_id, active, created_at, updated_at`

const getCommissionRuleByID = `SELECT` + commissionRuleColumns + ` FROM commission_rules WHERE id = $1`

func (q *Queries) GetCommissionRuleByID(ctx context.Context, db DBTX, id uuid.UUID) (CommissionRule, error) {
	return scanCommissionRule(db.QueryRow(ctx, getCommissionRuleByID, id))
}

const listActiveCommissionRules = `
SELECT` + commissionRuleColumns + `
FROM commission_rules
WHERE active
ORDER BY created_at, id`

func (q *Queries) ListActiveCommissionRules(ctx context.Context, db DBTX) ([]CommissionRule, error) {
	rows, err := db.Query(ctx, listActiveCommissionRules)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCommissionRule)
}

// A NULL type argument selects global rules only.
const listActiveCommissionRulesForType = `
SELECT` + commissionRuleColumns + `
FROM commission_rules
WHERE active
  AND (property_type_id IS NULL OR property_type_id = $1)
ORDER BY created_at, id`

func (q *Queries) ListActiveCommissionRulesForType(ctx context.Context, db DBTX, propertyTypeID pgtype.UUID) ([]CommissionRule, error) {
	rows, err := db.Query(ctx, listActiveCommissionRulesForType, propertyTypeID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCommissionRule)
}

const createCommissionRule = `
INSERT INTO commission_rules (` + commissionRuleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateCommissionRuleParams struct {
	ID                    uuid.UUID
	Title                 string
	HostCommissionRate    pgtype.Numeric
	HostCommissionFixed   pgtype.Numeric
	ClientCommissionRate  pgtype.Numeric
	ClientCommissionFixed pgtype.Numeric
	PropertyTypeID        pgtype.UUID
	Active                bool
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

func (q *Queries) CreateCommissionRule(ctx context.Context, db DBTX, arg CreateCommissionRuleParams) error {
	_, err := db.Exec(ctx, createCommissionRule,
		arg.ID,
		arg.Title,
		arg.HostCommissionRate,
		arg.HostCommissionFixed,
		arg.ClientCommissionRate,
		arg.ClientCommissionFixed,
		arg.PropertyTypeID,
		arg.Active,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateCommissionRule = `
UPDATE commission_rules
SET title = $2,
    host_commission_rate = $3,
    host_commission_fixed = $4,
    client_commission_rate = $5,
    client_commission_fixed = $6,
    active = $7,
    updated_at = $8
WHERE id = $1`

type UpdateCommissionRuleParams struct {
	ID                    uuid.UUID
	Title                 string
	HostCommissionRate    pgtype.Numeric
	HostCommissionFixed   pgtype.Numeric
	ClientCommissionRate  pgtype.Numeric
	ClientCommissionFixed pgtype.Numeric
	Active                bool
	UpdatedAt             pgtype.Timestamptz
}

func (q *Queries) UpdateCommissionRule(ctx context.Context, db DBTX, arg UpdateCommissionRuleParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCommissionRule,
		arg.ID,
		arg.Title,
		arg.HostCommissionRate,
		arg.HostCommissionFixed,
		arg.ClientCommissionRate,
		arg.ClientCommissionFixed,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCommissionRule(r pgx.Row) (CommissionRule, error) {
	var i CommissionRule
	err := r.Scan(
		&i.ID,
		&i.Title,
		&i.HostCommissionRate,
		&i.HostCommissionFixed,
		&i.ClientCommissionRate,
		&i.ClientCommissionFixed,
		&i.PropertyTypeID,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
