package platform_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"menulink/internal/api/controllers"
	"menulink/internal/repositories"
	"menulink/internal/services"
)

var Module = fx.Provide(
	providePlatformRepo, providePlatformService, providePlatformController,
)

func providePlatformRepo(db *gorm.DB) repositories.IPlatformRepository {
	return repositories.NewPlatformRepository(db)
}

func providePlatformService(platformRepo repositories.IPlatformRepository) services.PlatformServiceInterface {
	return services.NewPlatformService(platformRepo)
}

func providePlatformController(platformService services.PlatformServiceInterface) *controllers.PlatformController {
	return controllers.NewPlatformController(platformService)
}
