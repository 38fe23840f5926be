package commands

import (
	"context"

	"hosteed/internal/domain/property"
	"hosteed/internal/domain/user"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

func loadProperty(ctx context.Context, reads shared.CommandReads, propertyID uuid.UUID) (*property.Property, error) {
	p, err := reads.PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrPropertyNotFound)
		}
		return nil, err
	}
	return p, nil
}

func loadManagedProperty(
	ctx context.Context,
	reads shared.CommandReads,
	propertyID uuid.UUID,
	actor user.Actor,
) (*property.Property, error) {
	p, err := loadProperty(ctx, reads, propertyID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(p.HostID()) {
		return nil, errs.Forbidden(ErrNotPropertyOwner)
	}
	return p, nil
}

// authorizeForProperty loads the property and checks the actor hosts it or is an admin.
func authorizeForProperty(ctx context.Context, tx shared.Tx, propertyID uuid.UUID, actor user.Actor) error {
	_, err := loadManagedProperty(ctx, tx.Reads(), propertyID, actor)
	return err
}
