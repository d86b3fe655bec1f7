package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	adminOnly := []Operation{
		OpCarCreate,
		OpCarUpdate,
		OpCarDelete,
		OpCarImageUpload,
		OpAuditLogList,
	}

	for _, op := range adminOnly {
		assert.True(t, Allowed(op, RoleAdmin), "admin should pass %s", op)
		assert.False(t, Allowed(op, RoleCustomer), "customer should fail %s", op)
	}

	assert.True(t, Allowed(OpCarRent, RoleAdmin))
	assert.True(t, Allowed(OpCarRent, RoleCustomer))
}

func TestAllowedFailsClosed(t *testing.T) {
	assert.False(t, Allowed(Operation("car:unknown"), RoleAdmin))
	assert.False(t, Allowed(OpCarCreate, Role("")))
	assert.False(t, Allowed(OpCarCreate, Role("SUPERUSER")))
}
