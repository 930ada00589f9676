package components

import (
	"nagoyameshi/internal/handler"
	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewHomeHandler,
		api.NewRestaurantHandler,
		api.NewCategoryHandler,
		api.NewReviewHandler,
		api.NewReservationHandler,
		api.NewFavoriteHandler,
		api.NewSubscriptionHandler,
		api.NewContentHandler,
		api.NewAdminRestaurantHandler,
		api.NewAdminCategoryHandler,
		api.NewAdminUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth            *api.AuthHandler
	User            *api.UserHandler
	Home            *api.HomeHandler
	Restaurant      *api.RestaurantHandler
	Category        *api.CategoryHandler
	Review          *api.ReviewHandler
	Reservation     *api.ReservationHandler
	Favorite        *api.FavoriteHandler
	Subscription    *api.SubscriptionHandler
	Content         *api.ContentHandler
	AdminRestaurant *api.AdminRestaurantHandler
	AdminCategory   *api.AdminCategoryHandler
	AdminUser       *api.AdminUserHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:            p.Auth,
		User:            p.User,
		Home:            p.Home,
		Restaurant:      p.Restaurant,
		Category:        p.Category,
		Review:          p.Review,
		Reservation:     p.Reservation,
		Favorite:        p.Favorite,
		Subscription:    p.Subscription,
		Content:         p.Content,
		AdminRestaurant: p.AdminRestaurant,
		AdminCategory:   p.AdminCategory,
		AdminUser:       p.AdminUser,
	}
}
