package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Preparing))
	assert.Equal(t, 2, int(order.OutForDelivery))
	assert.Equal(t, 3, int(order.Delivered))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Preparing", order.Preparing.String())
	assert.Equal(t, "Out for Delivery", order.OutForDelivery.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4)} {
		t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		name     string
		from     order.Status
		apply    func(order.Status) (order.Status, error)
		expected order.Status
		wantErr  bool
	}{
		{"dispatch from preparing", order.Preparing, order.Status.Dispatch, order.OutForDelivery, false},
		{"dispatch from out for delivery", order.OutForDelivery, order.Status.Dispatch, order.Unknown, true},
		{"dispatch from delivered", order.Delivered, order.Status.Dispatch, order.Unknown, true},
		{"deliver from out for delivery", order.OutForDelivery, order.Status.Deliver, order.Delivered, false},
		{"deliver from preparing skips a stage", order.Preparing, order.Status.Deliver, order.Unknown, true},
		{"deliver from delivered", order.Delivered, order.Status.Deliver, order.Unknown, true},
		{"next from preparing", order.Preparing, order.Status.Next, order.OutForDelivery, false},
		{"next from out for delivery", order.OutForDelivery, order.Status.Next, order.Delivered, false},
		{"next from delivered", order.Delivered, order.Status.Next, order.Unknown, true},
		{"next from unknown", order.Unknown, order.Status.Next, order.Unknown, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		got, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("out for delivery")
	require.Error(t, err)
}

func TestStatus_NextWalksLifecycleOnce(t *testing.T) {
	var visited []order.Status
	for s := order.Preparing; !s.IsTerminal(); {
		next, err := s.Next()
		require.NoError(t, err)
		visited = append(visited, next)
		s = next
	}
	assert.Equal(t, []order.Status{order.OutForDelivery, order.Delivered}, visited)

	for _, s := range []order.Status{order.Delivered, order.Unknown} {
		next, err := s.Next()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, next)
	}
}
