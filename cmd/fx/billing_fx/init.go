package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"menulink/internal/api/controllers"
	"menulink/internal/gateway"
	"menulink/internal/services"
)

var Module = fx.Provide(
	provideGateway, provideBillingService, provideBillingController,
)

func provideGateway() gateway.OrderCreator {
	return gateway.NewRazorpayGateway()
}

func provideBillingService(db *gorm.DB, orderCreator gateway.OrderCreator, mail services.IMailService) services.BillingServiceInterface {
	return services.NewBillingService(db, orderCreator, mail)
}

func provideBillingController(billingService services.BillingServiceInterface) *controllers.BillingController {
	return controllers.NewBillingController(billingService)
}
