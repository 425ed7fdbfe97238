package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled", "PENDING", "Shipped"} {
		status, err := ParseOrderStatus(valid)
		require.NoError(t, err, valid)
		require.NotEmpty(t, status)
	}

	_, err := ParseOrderStatus("refunded")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestNilPolicyAllowsEverything(t *testing.T) {
	var policy StatusPolicy

	// Includes backwards moves like delivered -> pending; the permissive
	// default exists for manual corrections.
	assert.True(t, policy.Allows(OrderStatusDelivered, OrderStatusPending))
	assert.True(t, policy.Allows(OrderStatusCancelled, OrderStatusShipped))
}

func TestForwardOnlyPolicy(t *testing.T) {
	policy := ForwardOnlyPolicy()

	assert.True(t, policy.Allows(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, policy.Allows(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, policy.Allows(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, policy.Allows(OrderStatusShipped, OrderStatusDelivered))

	assert.False(t, policy.Allows(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, policy.Allows(OrderStatusShipped, OrderStatusCancelled))
	assert.False(t, policy.Allows(OrderStatusCancelled, OrderStatusPending))
}
