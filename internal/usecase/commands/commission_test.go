//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInvalidator struct {
	commands.NoopInvalidator
	rules     int
	extrasFor []uuid.UUID
}

func (c *countingInvalidator) InvalidateCommissionRules(context.Context) error {
	c.rules++
	return nil
}

func (c *countingInvalidator) InvalidatePropertyExtras(_ context.Context, id uuid.UUID) error {
	c.extrasFor = append(c.extrasFor, id)
	return nil
}

func TestCommissionRuleCommands(t *testing.T) {
	ctx := context.Background()
	valid := commands.CommissionRuleInput{
		Title:  "Villas",
		Rates:  builder.Rates("0.12", "1.50", "0.08", "0"),
		Active: true,
	}

	t.Run("admin creates a rule and the cache is dropped", func(t *testing.T) {
		f := newFixture()
		inv := &countingInvalidator{}
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, inv)

		rule, err := uc.Create(ctx, valid, f.admin)
		require.NoError(t, err)

		stored, ok := f.store.Rule(rule.ID())
		require.True(t, ok)
		assert.Equal(t, "Villas", stored.Title())
		assert.True(t, stored.IsActive())
		assert.Equal(t, 1, inv.rules)
	})

	t.Run("rule created inactive stays inactive", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, commands.NoopInvalidator{})

		in := valid
		in.Active = false
		rule, err := uc.Create(ctx, in, f.admin)
		require.NoError(t, err)
		assert.False(t, rule.IsActive())
	})

	t.Run("hosts cannot manage rules", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, commands.NoopInvalidator{})

		_, err := uc.Create(ctx, valid, f.host)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		_, err = uc.Update(ctx, uuid.New(), valid, f.host)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("rates out of range are rejected", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, commands.NoopInvalidator{})

		for name, rates := range map[string]struct{ hr, hf, cr, cf string }{
			"host rate above 1":   {"1.01", "0", "0", "0"},
			"client rate below 0": {"0", "0", "-0.01", "0"},
			"negative host fixed": {"0", "-1", "0", "0"},
		} {
			t.Run(name, func(t *testing.T) {
				in := valid
				in.Rates = builder.Rates(rates.hr, rates.hf, rates.cr, rates.cf)
				_, err := uc.Create(ctx, in, f.admin)
				assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
			})
		}
	})

	t.Run("update replaces rates", func(t *testing.T) {
		f := newFixture()
		existing := builder.GlobalRule(builder.Rates("0.10", "0", "0.05", "0"))
		f.store.AddRule(existing)
		inv := &countingInvalidator{}
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, inv)

		updated, err := uc.Update(ctx, existing.ID(), valid, f.admin)
		require.NoError(t, err)
		assert.True(t, updated.Rates().HostFixed.Equal(builder.Dec("1.50")))

		stored, _ := f.store.Rule(existing.ID())
		assert.True(t, stored.Rates().HostRate.Equal(builder.Dec("0.12")))
		assert.Equal(t, 1, inv.rules)
	})

	t.Run("update of unknown rule is not found", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewCommissionRuleCommands(f.store, f.clock, commands.NoopInvalidator{})

		_, err := uc.Update(ctx, uuid.New(), valid, f.admin)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
