package main

import (
	"context"
	"log"
	"time"

	"medicart-service/internal/config"
	httpctrl "medicart-service/internal/controllers/http"
	"medicart-service/internal/infra"
	mmysql "medicart-service/internal/infra/mysql"
	"medicart-service/internal/infra/rabbitmq"
	"medicart-service/internal/logger"
	mysqlrepo "medicart-service/internal/repository/mysql"
	"medicart-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		zlog.Fatal("db connect failed", "error", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	appointmentRepo := mysqlrepo.NewAppointmentRepository(db)
	availabilityRepo := mysqlrepo.NewAvailabilityRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	courseRepo := mysqlrepo.NewCourseRepository(db)
	enrollmentRepo := mysqlrepo.NewEnrollmentRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.ExchangeName)
	if err != nil {
		zlog.Fatal("failed to init publisher", "error", err)
	}
	defer publisher.Close()

	paymentClient := infra.NewPaymentClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey, cfg.ClientTimeout)
	zoomClient := infra.NewZoomClient(cfg.ZoomAPIURL, cfg.ZoomAPIToken, cfg.ClientTimeout)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	cartSvc := services.NewCartService(cartRepo, productRepo, zlog, cfg.CartTTL)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, courseRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, productRepo, paymentClient, publisher, enrollmentSvc, zlog)
	slotSvc := services.NewSlotService(appointmentRepo, availabilityRepo)
	appointmentSvc := services.NewAppointmentService(appointmentRepo, slotSvc, zoomClient, publisher, zlog)
	catalogSvc := services.NewCatalogService(productRepo, courseRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	cartSvc.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := cartSvc.WarmupProductCache(context.Background(), cfg.WarmupProductID); err != nil {
			zlog.Warn("cache warmup failed", "error", err)
		}
	}()

	handler := httpctrl.NewHandler(authSvc, cartSvc, orderSvc, appointmentSvc, catalogSvc, enrollmentSvc)

	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	zlog.Info("starting medicart service", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server run failed", "error", err)
	}
}
