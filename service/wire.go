package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(GoogleAuthService), "*"),
	wire.Bind(new(IGoogleAuthService), new(*GoogleAuthService)),

	wire.Struct(new(OtpService), "*"),
	wire.Bind(new(IOtpService), new(*OtpService)),

	wire.Struct(new(MailService), "*"),
	wire.Bind(new(IMailService), new(*MailService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),

	wire.Struct(new(AccessService), "*"),
	wire.Bind(new(IAccessService), new(*AccessService)),

	wire.Struct(new(ItineraryService), "*"),
	wire.Bind(new(IItineraryService), new(*ItineraryService)),

	wire.Struct(new(PlaceService), "*"),
	wire.Bind(new(IPlaceService), new(*PlaceService)),

	wire.Struct(new(ShareService), "*"),
	wire.Bind(new(IShareService), new(*ShareService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(PlannerService), "*"),
	wire.Bind(new(IPlannerService), new(*PlannerService)),

	wire.Struct(new(FcmService), "*"),
	wire.Bind(new(IFcmService), new(*FcmService)),
	NewFcmClient,

	NewOssService,
)
