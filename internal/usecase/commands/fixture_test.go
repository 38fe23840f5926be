//go:build unit

package commands_test

import (
	"time"

	"hosteed/internal/domain/property"
	"hosteed/internal/domain/user"
	"hosteed/internal/pkg/clock"
	"hosteed/tests/common/builder"
	"hosteed/tests/common/memstore"

	"github.com/google/uuid"
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	property *property.Property
	host     user.Actor
	admin    user.Actor
	stranger user.Actor
}

func newFixture() *fixture {
	store := memstore.New()
	prop := builder.NewPropertyBuilder().BuildDomain()
	store.AddProperty(prop)
	store.AddRule(builder.GlobalRule(builder.Rates("0.10", "0", "0.05", "0")))

	return &fixture{
		store:    store,
		clock:    clock.NewMockClock(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)),
		property: prop,
		host:     user.NewActor(prop.HostID(), user.RoleHost),
		admin:    user.NewActor(uuid.New(), user.RoleAdmin),
		stranger: user.NewActor(uuid.New(), user.RoleHost),
	}
}
