package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/config"
	"github.com/giarts/atelie-api/internal/database"
	"github.com/giarts/atelie-api/internal/handler"
	"github.com/giarts/atelie-api/internal/middleware"
	"github.com/giarts/atelie-api/internal/queue"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/router"
	"github.com/giarts/atelie-api/internal/service"
	"github.com/giarts/atelie-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.RunMigrations(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	roles := repository.NewRoleRepo(db)
	users := repository.NewUserRepo(db, roles)
	products := repository.NewProductRepo(db)
	events := repository.NewEventRepo(db)
	productImages := repository.NewProductImageRepo(db)
	eventImages := repository.NewEventImageRepo(db)

	files, err := storage.NewFileStore(cfg.StorageLocation)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	if err := service.EnsureAdmin(context.Background(), users, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	rdb := config.NewRedisClient()

	productImageSvc := service.NewProductImageService(products, productImages, files, cfg.ServerURL, service.PublishImageEvent)
	eventImageSvc := service.NewEventImageService(events, eventImages, files, cfg.ServerURL, service.PublishImageEvent)

	go func() {
		if err := queue.StartImageConsumer(); err != nil {
			log.Printf("image consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(e)
	e.Use(echomw.Logger(), echomw.Recover())

	router.Register(e, router.Handlers{
		Auth:          handler.NewAuthHandler(users, tokens, cfg.BcryptCost),
		Users:         handler.NewUserHandler(users, cfg.BcryptCost),
		Products:      handler.NewProductHandler(products),
		Events:        handler.NewEventHandler(events),
		ProductImages: handler.NewProductImageHandler(productImageSvc),
		EventImages:   handler.NewEventImageHandler(eventImageSvc),
	}, router.Middleware{
		Authenticate: middleware.Authenticate(tokens, users),
		RateLimit:    middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:        middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
