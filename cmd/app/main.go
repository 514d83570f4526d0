package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"menulink/cmd/fx/billing_fx"
	"menulink/cmd/fx/db_fx"
	"menulink/cmd/fx/mail_fx"
	"menulink/cmd/fx/plan_fx"
	"menulink/cmd/fx/platform_fx"
	"menulink/cmd/fx/restaurant_fx"
	"menulink/internal/api/controllers"
	"menulink/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		plan_fx.Module,
		platform_fx.Module,
		restaurant_fx.Module,
		billing_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	platformController *controllers.PlatformController,
	restaurantController *controllers.RestaurantController,
	billingController *controllers.BillingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, platformController, restaurantController, billingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	platformController *controllers.PlatformController,
	restaurantController *controllers.RestaurantController,
	billingController *controllers.BillingController) {

	r.GET("/plans", planController.ListPlans)

	restaurants := r.Group("/restaurants")
	restaurants.GET("/check-slug/:slug", restaurantController.CheckSlug)
	restaurants.GET("/public-data/:slug", restaurantController.PublicData)
	restaurants.GET("/membership/:slug", restaurantController.MembershipStatus)

	authed := restaurants.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("/create-one", restaurantController.CreateRestaurant)
	authed.POST("/order/create-one", billingController.CreateOrder)
	authed.POST("/order/verify", billingController.VerifyOrder)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/all-restaurants", restaurantController.ListRestaurants)
	admin.PUT("/restaurants/:restaurantId/membership", restaurantController.OverrideMembership)
	admin.GET("/platform-data", platformController.GetPlatformData)
	admin.PUT("/platform-data", platformController.UpdatePlatformData)
	admin.GET("/plans", planController.ListPlans)
	admin.POST("/plans", planController.CreatePlan)
	admin.PUT("/plans/:id", planController.UpdatePlan)
	admin.DELETE("/plans/:id", planController.DeletePlan)
}
