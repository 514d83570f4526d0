package restaurant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"menulink/internal/api/controllers"
	"menulink/internal/repositories"
	"menulink/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideRestaurantRepo, provideRestaurantService, provideRestaurantController,
)

func provideAccountRepo(db *gorm.DB) repositories.IAccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideRestaurantRepo(db *gorm.DB) repositories.IRestaurantRepository {
	return repositories.NewRestaurantRepository(db)
}

func provideRestaurantService(restaurantRepo repositories.IRestaurantRepository, accountRepo repositories.IAccountRepository) services.RestaurantServiceInterface {
	return services.NewRestaurantService(restaurantRepo, accountRepo)
}

func provideRestaurantController(restaurantService services.RestaurantServiceInterface) *controllers.RestaurantController {
	return controllers.NewRestaurantController(restaurantService)
}
