package services_test

import (
	"testing"

	"bladeshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy(t *testing.T) {
	policy := services.NewAccessPolicy([]int64{380617987}, []int64{222222222, 333333333})

	t.Run("resolves administrators", func(t *testing.T) {
		assert.True(t, policy.IsAdministrator(380617987))
		assert.False(t, policy.IsOperator(380617987))
		assert.Equal(t, services.RoleAdministrator, policy.RoleOf(380617987))
	})

	t.Run("resolves operators", func(t *testing.T) {
		assert.True(t, policy.IsOperator(222222222))
		assert.False(t, policy.IsAdministrator(222222222))
		assert.Equal(t, services.RoleOperator, policy.RoleOf(333333333))
	})

	t.Run("unknown identities have no role", func(t *testing.T) {
		assert.Equal(t, services.RoleNone, policy.RoleOf(1))
		assert.False(t, policy.IsAdministrator(1))
		assert.False(t, policy.IsOperator(1))
	})

	t.Run("administrator wins when listed in both sets", func(t *testing.T) {
		both := services.NewAccessPolicy([]int64{5}, []int64{5})
		assert.Equal(t, services.RoleAdministrator, both.RoleOf(5))
	})

	t.Run("empty allow-lists admit nobody", func(t *testing.T) {
		empty := services.NewAccessPolicy(nil, nil)
		assert.Equal(t, services.RoleNone, empty.RoleOf(380617987))
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "administrator", services.RoleAdministrator.String())
	assert.Equal(t, "operator", services.RoleOperator.String())
	assert.Equal(t, "none", services.RoleNone.String())
}
