package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"HQ", "OWNER", "STAFF"} {
		r, err := entity.ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, r.String())
	}

	for _, invalid := range []string{"", "hq", "owner", "ADMIN", "MANAGER"} {
		_, err := entity.ParseRole(invalid)
		assert.Error(t, err, "role %q must be rejected", invalid)
	}
}

func TestNeedsBranch(t *testing.T) {
	assert.False(t, entity.RoleHQ.NeedsBranch())
	assert.True(t, entity.RoleOwner.NeedsBranch())
	assert.True(t, entity.RoleStaff.NeedsBranch())
}

// The menu is a pure role lookup; staff must never see admin entries.
func TestMenuFor(t *testing.T) {
	hq := entity.MenuFor(entity.RoleHQ)
	owner := entity.MenuFor(entity.RoleOwner)
	staff := entity.MenuFor(entity.RoleStaff)

	assert.Greater(t, len(hq), len(owner))
	assert.Greater(t, len(owner), len(staff))

	keys := func(items []entity.MenuItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Key)
		}
		return out
	}

	assert.Contains(t, keys(hq), "approvals")
	assert.Contains(t, keys(owner), "invitations")
	assert.NotContains(t, keys(staff), "approvals")
	assert.NotContains(t, keys(staff), "invitations")

	assert.Nil(t, entity.MenuFor(entity.Role("ADMIN")))
}

func TestInvitationRedeemable(t *testing.T) {
	now := time.Now()
	inv := &entity.Invitation{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, inv.Redeemable(now))

	used := now
	inv.UsedAt = &used
	assert.False(t, inv.Redeemable(now), "a used invitation is dead")

	expired := &entity.Invitation{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.Redeemable(now))
}
