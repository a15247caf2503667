package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"roomreserve/internal/config"
	"roomreserve/internal/database"
	"roomreserve/internal/docstore"
	"roomreserve/internal/middleware"
	"roomreserve/internal/modules/auth"
	"roomreserve/internal/modules/reservation"
	jwtsvc "roomreserve/internal/pkg/jwt"
	"roomreserve/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	store, err := docstore.New(db)
	if err != nil {
		log.Fatal(err)
	}

	reservationRepo := repository.NewReservationRepository(store)
	userRepo := repository.NewUserRepository(store)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	reservationService := reservation.NewService(reservationRepo)
	reservationHandler := reservation.NewHandler(reservationService, userRepo)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected (reservation endpoints)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			reservationHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
