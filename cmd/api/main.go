package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salescrm/internal/config"
	"salescrm/internal/database"
	"salescrm/internal/middleware"
	"salescrm/internal/modules/auth"
	"salescrm/internal/modules/contract"
	"salescrm/internal/modules/customer"
	"salescrm/internal/modules/event"
	"salescrm/internal/modules/user"
	jwtsvc "salescrm/internal/pkg/jwt"
	"salescrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	contractRepo := repository.NewContractRepository(db)
	eventRepo := repository.NewEventRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	customerHandler := customer.NewHandler(customer.NewService(customerRepo, userRepo))
	contractHandler := contract.NewHandler(contract.NewService(contractRepo, customerRepo, userRepo, eventRepo))
	eventHandler := event.NewHandler(event.NewService(eventRepo, userRepo, customerRepo))

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// everything else requires an authenticated principal
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			userHandler.RegisterRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			contractHandler.RegisterRoutes(protected)
			eventHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
