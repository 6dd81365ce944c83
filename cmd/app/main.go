package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripcraft/cmd/fx/auth_fx"
	"tripcraft/cmd/fx/controllers_fx"
	"tripcraft/cmd/fx/db_fx"
	"tripcraft/cmd/fx/destination_fx"
	"tripcraft/cmd/fx/generation_fx"
	"tripcraft/cmd/fx/itinerary_fx"
	"tripcraft/cmd/fx/ratelimit_fx"
	"tripcraft/internal/api/controllers"
	"tripcraft/internal/services"
	"tripcraft/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		generation_fx.Module,
		ratelimit_fx.Module,
		itinerary_fx.Module,
		destination_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

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
	admissionService services.AdmissionServiceInterface,
	itineraryController *controllers.ItineraryController,
	destinationController *controllers.DestinationController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RateLimitMiddleware(admissionService))

	RegisterRoutes(r, itineraryController, destinationController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	destinationController *controllers.DestinationController,
	authController *controllers.AuthController) {

	r.POST("/auth/token", authController.ExchangeToken)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("/health", itineraryController.HealthCheck)
	itineraryGroup.POST("/questionnaire", middleware.JWTAuthMiddleware(), itineraryController.SubmitQuestionnaire)
	itineraryGroup.POST("/generate", middleware.JWTAuthMiddleware(), itineraryController.GenerateItinerary)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("/health", destinationController.HealthCheck)
	destinationGroup.POST("/recommendations", middleware.JWTAuthMiddleware(), destinationController.GetRecommendations)
}
