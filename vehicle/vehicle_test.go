package vehicle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/roadnet/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Catalog(t *testing.T) {
	cases := []struct {
		name    string
		class   vehicle.Class
		penalty float64
		damaged bool
	}{
		{"bike", vehicle.Bike, 0.5, true},
		{"car", vehicle.Car, 1, false},
		{"three_wheeler", vehicle.ThreeWheeler, 1.2, true},
		{"lorry", vehicle.Lorry, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vehicle.Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.class, v.Class)
			assert.Equal(t, tc.penalty, v.PenaltyFactor)
			assert.Equal(t, tc.damaged, v.CanTravelOnDamaged)
			assert.Equal(t, tc.name, v.Name())
		})
	}
}

func TestLookup_Normalizes(t *testing.T) {
	for _, name := range []string{"Three-Wheeler", " three wheeler ", "THREE_WHEELER"} {
		v, err := vehicle.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, vehicle.ThreeWheeler, v.Class)
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"tank", "", "none"} {
		_, err := vehicle.Lookup(name)
		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrUnknownClass)

		var uce *vehicle.UnknownClassError
		require.True(t, errors.As(err, &uce))
		assert.Equal(t, name, uce.Name)
	}
}

func TestParseClass_EmptyIsNone(t *testing.T) {
	c, err := vehicle.ParseClass("")
	require.NoError(t, err)
	assert.Equal(t, vehicle.None, c)
}

func TestWeight(t *testing.T) {
	for _, v := range vehicle.Catalog() {
		for _, d := range []float64{0, 1, 7.5, 25} {
			for _, delay := range []float64{0, 3, 30} {
				plain := vehicle.Weight(d, delay, false, v)
				assert.Equal(t, d+delay, plain)
				assert.Equal(t, plain+10*v.PenaltyFactor, vehicle.Weight(d, delay, true, v))
			}
		}
	}
}

func TestCanUse(t *testing.T) {
	bike, _ := vehicle.Lookup("bike")
	car, _ := vehicle.Lookup("car")

	assert.True(t, bike.CanUse(true))
	assert.True(t, bike.CanUse(false))
	assert.False(t, car.CanUse(true))
	assert.True(t, car.CanUse(false))
}

func TestCatalog_IsCopy(t *testing.T) {
	c := vehicle.Catalog()
	c[0].PenaltyFactor = 99

	bike, err := vehicle.Get(vehicle.Bike)
	require.NoError(t, err)
	assert.Equal(t, 0.5, bike.PenaltyFactor)
}

func TestClass_StringAndTitle(t *testing.T) {
	assert.Equal(t, "three_wheeler", vehicle.ThreeWheeler.String())
	assert.Equal(t, "Three Wheeler", vehicle.ThreeWheeler.Title())
	assert.Equal(t, "Class(42)", vehicle.Class(42).String())
	assert.Equal(t, []vehicle.Class{vehicle.Bike, vehicle.Car, vehicle.ThreeWheeler, vehicle.Lorry}, vehicle.Classes())
}
