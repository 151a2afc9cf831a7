package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "reservas/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"reservas/internal/auth"
	"reservas/internal/cache"
	"reservas/internal/config"
	"reservas/internal/db"
	"reservas/internal/events"
	"reservas/internal/handler"
	"reservas/internal/model"
	"reservas/internal/obs"
	"reservas/internal/repository"
	"reservas/internal/router"
	"reservas/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Reservas API
// @version 1.0
// @description Space reservation API: user registration, login and double-booking-safe reservations.
// @host localhost:3001
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, "reservas-api", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("tracing init: %v", err)
	}

	gormDB, err := db.NewMySQL(db.DSN(cfg), db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	log.Printf("connected to mysql at %s:%d/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		// reserva references usuario, drop it first
		for _, table := range []interface{}{&model.Reservation{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Reservation{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient == nil {
		log.Println("REDIS_ADDR not set, listing cache disabled")
	} else if err := cacheClient.Ping(ctx); err != nil {
		log.Printf("redis unreachable, serving without cache: %v", err)
	}

	var reservationOpts []service.ReservationOption
	var publisher *events.Publisher
	if cfg.AMQPURL == "" {
		log.Println("AMQP_URL not set, reservation events disabled")
	} else if publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.EventsExchange); err != nil {
		log.Printf("rabbitmq unreachable, reservation events disabled: %v", err)
	} else {
		reservationOpts = append(reservationOpts, service.WithEvents(publisher))
	}

	if !cfg.AdminRegistrationEnabled() {
		log.Println("ADMIN_KEY not set, Administrador registration is disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, auth.NewBcryptHasher(auth.DefaultCost), auth.NewAdminGate(cfg.AdminKey))
	reservationService := service.NewReservationService(reservationRepo, cacheClient, cfg.CacheTTL, reservationOpts...)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		handler.NewUserHandler(authService),
		handler.NewAuthHandler(authService),
		handler.NewReservationHandler(reservationService),
	)

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
	if err := publisher.Close(); err != nil {
		log.Printf("rabbitmq close: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
