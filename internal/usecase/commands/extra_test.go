//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/user"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraCommands(t *testing.T) {
	ctx := context.Background()
	cleaning := commands.CreateExtraInput{
		Name:        "Cleaning",
		PriceEUR:    builder.Dec("30"),
		PriceMGA:    builder.Dec("150000"),
		PricingType: extra.PricingPerBooking,
	}

	t.Run("host creates an extra they own", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		e, err := uc.Create(ctx, cleaning, f.host)
		require.NoError(t, err)
		require.NotNil(t, e.OwnerID())
		assert.Equal(t, f.host.ID, *e.OwnerID())
	})

	t.Run("global extras are admin only", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		in := cleaning
		in.Global = true
		_, err := uc.Create(ctx, in, f.host)
		assert.True(t, errs.Is(err, errs.ErrForbidden))

		e, err := uc.Create(ctx, in, f.admin)
		require.NoError(t, err)
		assert.True(t, e.IsGlobal())
	})

	t.Run("guests cannot create extras", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		_, err := uc.Create(ctx, cleaning, user.NewActor(uuid.New(), user.RoleGuest))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		in := cleaning
		in.PriceEUR = builder.Dec("-1")
		_, err := uc.Create(ctx, in, f.host)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("attach own and global extras", func(t *testing.T) {
		f := newFixture()
		hostID := f.host.ID
		own := builder.Extra("Breakfast", "12", "60000", extra.PricingPerDayPerson, &hostID)
		global := builder.Extra("Airport pickup", "25", "120000", extra.PricingPerBooking, nil)
		f.store.AddExtra(own)
		f.store.AddExtra(global)
		inv := &countingInvalidator{}
		uc := commands.NewExtraCommands(f.store, inv)

		require.NoError(t, uc.AttachToProperty(ctx, f.property.ID(), own.ID(), f.host))
		require.NoError(t, uc.AttachToProperty(ctx, f.property.ID(), global.ID(), f.host))
		require.NoError(t, uc.AttachToProperty(ctx, f.property.ID(), global.ID(), f.host))

		assert.Equal(t, []uuid.UUID{own.ID(), global.ID()}, f.store.ExtrasAttachedTo(f.property.ID()))
		assert.Len(t, inv.extrasFor, 3)
	})

	t.Run("extra of another host cannot be attached", func(t *testing.T) {
		f := newFixture()
		otherID := uuid.New()
		foreign := builder.Extra("Boat trip", "80", "400000", extra.PricingPerPerson, &otherID)
		f.store.AddExtra(foreign)
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		err := uc.AttachToProperty(ctx, f.property.ID(), foreign.ID(), f.host)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.Empty(t, f.store.ExtrasAttachedTo(f.property.ID()))
	})

	t.Run("unknown extra is not found", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewExtraCommands(f.store, commands.NoopInvalidator{})

		err := uc.AttachToProperty(ctx, f.property.ID(), uuid.New(), f.host)
		assert.True(t, errs.Is(err, commands.ErrExtraNotFound))
	})
}
