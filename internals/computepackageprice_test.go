package internals

import (
	"easemytrip-planner/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePackagePrice(t *testing.T) {
	hotel := &model.Hotel{PricePerNight: 100}
	spots := []model.TouristSpot{
		{SpotID: 1, EntryFee: 15},
		{SpotID: 2, EntryFee: 0},
	}
	itinerary := model.Itinerary{
		{Day: 1, Activities: []model.Activity{{SpotID: 1}, {SpotID: 2}}},
		{Day: 2, Activities: []model.Activity{{SpotID: 1}}},
	}
	transport := []model.TransportOption{{Price: 50}}

	// 2 nights hotel + 2x15 entry fees x2 travelers + 50 transport x2
	total := ComputePackagePrice(3, 2, hotel, itinerary, transport, spots)

	assert.Equal(t, 100.0*2+15*2*2+50*2, total)
}

func TestComputePackagePriceNoHotelSingleDay(t *testing.T) {
	total := ComputePackagePrice(1, 1, nil, nil, nil, nil)

	assert.Zero(t, total)
}

func TestComputePackagePriceUnknownSpotFeeIgnored(t *testing.T) {
	itinerary := model.Itinerary{
		{Day: 1, Activities: []model.Activity{{SpotID: 42}}},
	}

	total := ComputePackagePrice(1, 1, nil, itinerary, nil, nil)

	assert.Zero(t, total)
}

func TestComputePackagePriceDefaultsTravelers(t *testing.T) {
	transport := []model.TransportOption{{Price: 80}}

	total := ComputePackagePrice(1, 0, nil, nil, transport, nil)

	assert.Equal(t, 80.0, total)
}
