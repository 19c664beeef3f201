package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanListAll(t *testing.T) {
	assert.True(t, CanListAll(true))
	assert.False(t, CanListAll(false))
}

func TestCanModify(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	// Self access is always allowed, admin or not.
	assert.True(t, CanModify(self, self, false))
	assert.True(t, CanModify(self, self, true))

	// Cross-account access requires the admin flag.
	assert.False(t, CanModify(self, other, false))
	assert.True(t, CanModify(self, other, true))
}

func TestCanModify_ZeroTarget(t *testing.T) {
	caller := uuid.New()

	// The decision never depends on whether the target resolves to a real
	// account, only on the caller's identity and admin flag.
	assert.False(t, CanModify(caller, uuid.Nil, false))
	assert.True(t, CanModify(caller, uuid.Nil, true))
}
