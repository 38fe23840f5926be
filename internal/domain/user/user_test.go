//go:build unit

package user_test

import (
	"testing"

	"hosteed/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		for _, s := range []string{"guest", "host", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := user.NewRole("operator")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("ordering", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.AtLeast(user.RoleHost))
		assert.True(t, user.RoleHost.AtLeast(user.RoleHost))
		assert.False(t, user.RoleGuest.AtLeast(user.RoleHost))
		assert.False(t, user.Role("bogus").AtLeast(user.RoleGuest))
	})
}

func TestActorCanManage(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name  string
		actor user.Actor
		want  bool
	}{
		{name: "owner", actor: user.NewActor(owner, user.RoleHost), want: true},
		{name: "admin", actor: user.NewActor(uuid.New(), user.RoleAdmin), want: true},
		{name: "other host", actor: user.NewActor(uuid.New(), user.RoleHost), want: false},
		{name: "anonymous", actor: user.NewActor(uuid.Nil, user.RoleGuest), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManage(owner))
		})
	}
}
