package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/booking"
	"github.com/villastay/property-reservation/internal/config"
	"github.com/villastay/property-reservation/internal/database"
	"github.com/villastay/property-reservation/internal/handler"
	"github.com/villastay/property-reservation/internal/middleware"
	"github.com/villastay/property-reservation/internal/queue"
	"github.com/villastay/property-reservation/internal/repository"
	"github.com/villastay/property-reservation/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	propertyRepo := repository.NewPropertyRepo(db)
	if err := propertyRepo.Seed(ctx, database.DefaultProperties); err != nil {
		log.Fatalf("seed properties: %v", err)
	}

	bookingRepo := repository.NewBookingRepo(db)
	userRepo := repository.NewUserRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)

	engine := booking.NewEngine(bookingRepo, booking.SystemClock{})

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo), cfg.JWTSecret)
	router.RegisterBooking(e, handler.NewBookingHandler(engine))
	router.RegisterCatalog(e, handler.NewPropertyHandler(propertyRepo), handler.NewFeedbackHandler(feedbackRepo))

	// Background consumers: booking audit log and expiration sweeps.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()
	go func() {
		if err := queue.StartSweepConsumer(engine); err != nil {
			log.Printf("sweep consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
