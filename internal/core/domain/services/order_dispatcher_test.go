package services_test

import (
	"testing"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/domain/services"
	"delivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLocation(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return location
}

func createOrder(t *testing.T, x, y kernel.Coordinate) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), createLocation(t, x, y))
	require.NoError(t, err)
	return o
}

func createCourier(t *testing.T, name string, speed int, x, y kernel.Coordinate) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(
		kernel.NewUUID(),
		name,
		courier.TransportNameForSpeed(speed),
		speed,
		createLocation(t, x, y),
	)
	require.NoError(t, err)
	return c
}

func TestDispatchService_Dispatch(t *testing.T) {
	t.Run("should dispatch order to courier with shortest time", func(t *testing.T) {
		// Order at (5,5). A is a car at (1,1): distance 8, time 8/3.
		// B is a pedestrian at (2,2): distance 6, time 6. A wins despite being farther.
		testOrder := createOrder(t, 5, 5)
		courierA := createCourier(t, "A", 3, 1, 1)
		courierB := createCourier(t, "B", 1, 2, 2)

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{courierA, courierB})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsEqual(courierA))

		// Both sides of the pair flipped
		assert.Equal(t, order.Assigned, testOrder.Status())
		assert.True(t, testOrder.Courier().IsEqual(courierA.ID()))
		assert.Equal(t, courier.StatusBusy, courierA.Status())
		assert.Equal(t, courier.StatusFree, courierB.Status())
	})

	t.Run("should pick the first courier on ties", func(t *testing.T) {
		testOrder := createOrder(t, 5, 5)
		first := createCourier(t, "First", 2, 4, 4)
		second := createCourier(t, "Second", 2, 6, 6)

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{first, second})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(first))
	})

	t.Run("should skip busy couriers", func(t *testing.T) {
		testOrder := createOrder(t, 5, 5)
		nearButBusy := createCourier(t, "Near", 3, 5, 5)
		require.NoError(t, nearButBusy.SetBusy())
		farButFree := createCourier(t, "Far", 1, 10, 10)

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{nearButBusy, farButFree})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(farButFree))
		assert.Equal(t, courier.StatusBusy, farButFree.Status())
	})

	t.Run("should require a couriers collection", func(t *testing.T) {
		// A missing candidate set is a caller error, distinct from a fleet
		// that is merely fully busy.
		tests := map[string][]*courier.Courier{
			"nil couriers":   nil,
			"empty couriers": {},
		}

		for name, couriers := range tests {
			t.Run(name, func(t *testing.T) {
				testOrder := createOrder(t, 8, 8)

				dispatcher := services.NewDispatchService()

				result, err := dispatcher.Dispatch(testOrder, couriers)

				require.Error(t, err)
				assert.Nil(t, result)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.NotErrorIs(t, err, services.ErrNoFreeCouriers)
				assert.Equal(t, order.Created, testOrder.Status())
			})
		}
	})

	t.Run("should return error when all couriers are busy", func(t *testing.T) {
		testOrder := createOrder(t, 8, 8)
		busy1 := createCourier(t, "Busy1", 2, 1, 1)
		require.NoError(t, busy1.SetBusy())
		busy2 := createCourier(t, "Busy2", 3, 9, 9)
		require.NoError(t, busy2.SetBusy())

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{busy1, busy2})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrNoFreeCouriers)
		assert.Contains(t, err.Error(), testOrder.ID().String())
	})

	t.Run("should reject invalid order", func(t *testing.T) {
		dispatcher := services.NewDispatchService()
		c := createCourier(t, "Solo", 2, 1, 1)

		result, err := dispatcher.Dispatch(nil, []*courier.Courier{c})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, courier.StatusFree, c.Status())
	})

	t.Run("should reject order that is already assigned", func(t *testing.T) {
		testOrder := createOrder(t, 5, 5)
		require.NoError(t, testOrder.Assign(kernel.NewUUID()))

		dispatcher := services.NewDispatchService()
		c := createCourier(t, "Solo", 2, 1, 1)

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{c})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, courier.StatusFree, c.Status())
	})

	t.Run("should reject invalid courier in candidates", func(t *testing.T) {
		testOrder := createOrder(t, 5, 5)
		var invalidCourier courier.Courier

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{&invalidCourier})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, order.Created, testOrder.Status())
	})

	t.Run("courier at the order location wins immediately", func(t *testing.T) {
		testOrder := createOrder(t, 7, 7)
		atLocation := createCourier(t, "Here", 1, 7, 7)
		nearby := createCourier(t, "Nearby", 3, 6, 7)

		dispatcher := services.NewDispatchService()

		result, err := dispatcher.Dispatch(testOrder, []*courier.Courier{nearby, atLocation})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(atLocation))
	})
}
