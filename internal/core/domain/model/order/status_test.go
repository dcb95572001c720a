package order_test

import (
	"fmt"
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Open))
		assert.Equal(t, 2, int(order.Queued))
		assert.Equal(t, 3, int(order.Assigned))
		assert.Equal(t, 4, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []order.Status{order.Open, order.Queued, order.Assigned, order.Delivered} {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		require.ErrorIs(t, order.Status(5).Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Queued", order.Queued.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, status := range []order.Status{order.Open, order.Queued, order.Assigned, order.Delivered} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects Unknown and garbage", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should follow the forward path", func(t *testing.T) {
		s, err := order.Open.Checkout()
		require.NoError(t, err)
		assert.Equal(t, order.Queued, s)

		s, err = s.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		_, err := order.Open.Assign()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Open is not a valid status to assign")

		_, err = order.Queued.Deliver()
		require.Error(t, err)

		_, err = order.Assigned.Checkout()
		require.Error(t, err)
	})

	t.Run("should reject reassignment", func(t *testing.T) {
		_, err := order.Assigned.Assign()
		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	tests := []struct {
		status  order.Status
		courier bool
		wantErr bool
	}{
		{order.Open, false, false},
		{order.Open, true, true},
		{order.Queued, false, false},
		{order.Queued, true, true},
		{order.Assigned, true, false},
		{order.Assigned, false, true},
		{order.Delivered, true, false},
		{order.Delivered, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s with courier=%t", tt.status, tt.courier), func(t *testing.T) {
			err := tt.status.ValidateCanHaveCourier(tt.courier)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
