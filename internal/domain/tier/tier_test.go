package tier

import (
	"testing"

	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestForPoints(t *testing.T) {
	testCases := []struct {
		points           int64
		expectedID       int
		expectedName     string
		expectedDiscount int64
	}{
		{0, 1, "Standard", 0},
		{99, 1, "Standard", 0},
		{100, 2, "Silver", 3},
		{499, 2, "Silver", 3},
		{500, 3, "Gold", 5},
		{999, 3, "Gold", 5},
		{1000, 4, "Diamond", 10},
		{1_000_000, 4, "Diamond", 10},
		{-50, 1, "Standard", 0},
	}

	for _, tc := range testCases {
		got := ForPoints(tc.points)
		assert.Equal(t, tc.expectedID, got.ID, "points=%d", tc.points)
		assert.Equal(t, tc.expectedName, got.Name, "points=%d", tc.points)
		assert.True(t, got.DiscountPercent.Equal(decimal.NewFromInt(tc.expectedDiscount)),
			"points=%d discount=%s", tc.points, got.DiscountPercent)
	}
}

func TestByID(t *testing.T) {
	got, err := ByID(3)
	assert.NoError(t, err)
	assert.Equal(t, "Gold", got.Name)

	_, err = ByID(99)
	assert.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestPointsRequiredFor(t *testing.T) {
	expected := map[int]int64{1: 0, 2: 100, 3: 500, 4: 1000}
	for id, pts := range expected {
		got, err := PointsRequiredFor(id)
		assert.NoError(t, err)
		assert.Equal(t, pts, got)
	}

	_, err := PointsRequiredFor(0)
	assert.True(t, ierr.IsNotFound(err))
}

func TestNext(t *testing.T) {
	next, ok := Next(1)
	assert.True(t, ok)
	assert.Equal(t, "Silver", next.Name)

	next, ok = Next(3)
	assert.True(t, ok)
	assert.Equal(t, "Diamond", next.Name)

	_, ok = Next(4)
	assert.False(t, ok)
}

func TestTableInvariants(t *testing.T) {
	tiers := All()
	assert.Len(t, tiers, 4)

	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].MinPoints, tiers[i-1].MinPoints,
			"thresholds must be strictly increasing")
		assert.True(t, tiers[i].DiscountPercent.GreaterThan(tiers[i-1].DiscountPercent),
			"discounts must be strictly increasing")
		assert.Equal(t, tiers[i-1].ID+1, tiers[i].ID)
	}
}
