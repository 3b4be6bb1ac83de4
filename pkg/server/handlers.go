package server

import (
	"Tripper/handler"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *handler.Auth
	User       *handler.User
	Admin      *handler.Admin
	Place      *handler.Place
	Restaurant *handler.Restaurant
	Hotel      *handler.Hotel
	Attraction *handler.Attraction
	Itinerary  *handler.Itinerary
	Planner    *handler.Planner
	Share      *handler.Share
	Favorite   *handler.Favorite
}

func (h *Handlers) RegisterRoutes(r gin.IRouter) {
	h.Auth.RegisterRouter(r)
	h.User.RegisterRouter(r)
	h.Admin.RegisterRouter(r)
	h.Place.RegisterRouter(r)
	h.Restaurant.RegisterRouter(r)
	h.Hotel.RegisterRouter(r)
	h.Attraction.RegisterRouter(r)
	h.Itinerary.RegisterRouter(r)
	h.Planner.RegisterRouter(r)
	h.Share.RegisterRouter(r)
	h.Favorite.RegisterRouter(r)
}
