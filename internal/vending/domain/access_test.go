package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateProduct(t *testing.T) {
	t.Parallel()

	product := Product{ID: 1, SellerID: 10}

	tests := []struct {
		name     string
		actor    Actor
		expected bool
	}{
		{name: "owner seller", actor: Actor{ID: 10, Role: RoleSeller}, expected: true},
		{name: "other seller", actor: Actor{ID: 11, Role: RoleSeller}, expected: true},
		{name: "buyer", actor: Actor{ID: 12, Role: RoleBuyer}, expected: false},
		{name: "buyer with owner id", actor: Actor{ID: 10, Role: RoleBuyer}, expected: true},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CanMutateProduct(tt.actor, product))
		})
	}
}

func TestCanMutateAccount(t *testing.T) {
	t.Parallel()

	assert.True(t, CanMutateAccount(Actor{ID: 3, Role: RoleBuyer}, 3))
	assert.False(t, CanMutateAccount(Actor{ID: 3, Role: RoleSeller}, 4))
}
