package main

import (
	"context"
	"net/http"
	"os"

	"mobistore/controllers"
	"mobistore/middleware"
	"mobistore/routes"
	"mobistore/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Proceeding with environment variables.")
	}
	utils.InitLogger()

	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))
	superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")
	if superAdminEmail == "" {
		log.Warn().Msg("SUPER_ADMIN_EMAIL is not set; role changes are disabled")
	}

	emailService := utils.NewEmailService()

	client := utils.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal().Err(err).Msg("mongo disconnect failed")
		}
	}()
	rdb := utils.ConnectRedis()

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.RegisterRoutes(router, &routes.Controllers{
		Users:      controllers.NewUserController(client),
		Products:   controllers.NewProductController(client),
		Carts:      controllers.NewCartController(rdb),
		Orders:     controllers.NewOrderController(client, emailService),
		Banners:    controllers.NewBannerController(client),
		Brands:     controllers.NewBrandController(client),
		Navigation: controllers.NewNavigationController(client),
		Popups:     controllers.NewPopupController(client),
	}, superAdminEmail)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("Server is running")
	log.Fatal().Err(http.ListenAndServe(":"+port, router)).Msg("server stopped")
}
