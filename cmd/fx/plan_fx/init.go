package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"menulink/internal/api/controllers"
	"menulink/internal/repositories"
	"menulink/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService, providePlanController,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
