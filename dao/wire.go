package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPlaceDAO,
	NewPlacePhotoDAO,
	NewRestaurantDetailDAO,
	NewHotelDetailDAO,
	NewAttractionDetailDAO,
	NewItineraryDAO,
	NewItineraryDayDAO,
	NewItineraryActivityDAO,
	NewItineraryShareDAO,
	NewFavoriteItineraryDAO,
	NewFCMTokenDAO,
)
