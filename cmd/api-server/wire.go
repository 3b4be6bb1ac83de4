//go:build wireinject
// +build wireinject

package main

import (
	"Tripper/config"
	"Tripper/dao"
	"Tripper/handler"
	"Tripper/pkg/client"
	"Tripper/pkg/database"
	"Tripper/pkg/server"
	"Tripper/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Place), "*"),
		wire.Struct(new(handler.Restaurant), "*"),
		wire.Struct(new(handler.Hotel), "*"),
		wire.Struct(new(handler.Attraction), "*"),
		wire.Struct(new(handler.Itinerary), "*"),
		wire.Struct(new(handler.Planner), "*"),
		wire.Struct(new(handler.Share), "*"),
		wire.Struct(new(handler.Favorite), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
