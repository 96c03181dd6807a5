package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nftforge/mint-service/config"
	"github.com/nftforge/mint-service/internal/cache"
	"github.com/nftforge/mint-service/internal/clock"
	"github.com/nftforge/mint-service/internal/database"
	"github.com/nftforge/mint-service/internal/handlers"
	"github.com/nftforge/mint-service/internal/ledger"
	"github.com/nftforge/mint-service/internal/models"
	"github.com/nftforge/mint-service/internal/publisher"
	"github.com/nftforge/mint-service/internal/ratelimit"
	"github.com/nftforge/mint-service/internal/repository/posgrest"
	"github.com/nftforge/mint-service/internal/service"
	"github.com/nftforge/mint-service/internal/subscriber"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.WalletRecord{}, &models.AuditRecord{}, &models.Reservation{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if os.Getenv("GO_ENV") == "local" {
		if err := database.SeedWalletRecords(db); err != nil {
			log.Printf("Warning: failed to seed wallet records: %v", err)
		}
	}

	clk := clock.Real{}

	walletRepo := posgrest.NewWalletRecordRepository(db)
	auditRepo := posgrest.New[models.AuditRecord](db)
	reservationRepo := posgrest.NewReservationRepository(db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	eventPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	gateway := ledger.NewGateway(
		cfg.Ledger.FetchTimeout,
		ledger.NewIndexerClient("primary", cfg.Ledger.PrimaryURL, cfg.Ledger.FetchTimeout),
		ledger.NewIndexerClient("secondary", cfg.Ledger.SecondaryURL, cfg.Ledger.FetchTimeout),
	)
	limiter := ratelimit.NewFixedWindowLimiter(cfg.Verification.RateLimit, cfg.Verification.RateLimitWindow, clk)
	resultCache := cache.NewTTLCache(cfg.Verification.CacheTTL, clk)

	verificationService := service.NewVerificationService(
		gateway, limiter, resultCache, walletRepo, auditRepo, eventPublisher, clk,
	)
	reservationService := service.NewReservationService(
		reservationRepo, eventPublisher, clk,
		cfg.Reservation.TTL, cfg.Reservation.GracePeriod, cfg.Reservation.TotalSlots,
		cfg.Reservation.GetRetryConfig(),
	)

	verificationHandler := handlers.NewVerificationHandler(verificationService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(verificationHandler, reservationHandler)

	a.initSubscribers(ctx, reservationHandler, eventPublisher, cfg.Kafka.GetRetryConfig())

	go reservationService.RunSweeper(ctx, cfg.Reservation.SweepInterval)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(ctx context.Context, reservationHandler *handlers.ReservationHandler, publisher *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.MintConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, publisher, retryConfig)

	consumer.Listen(ctx, func(topic string, value []byte) error {
		log.Printf("Received event → topic=%s value=%s\n", topic, string(value))
		if err := reservationHandler.HandleEvents(ctx, topic, value); err != nil {
			logrus.Error(err.Error())
			return err
		}
		return nil
	})
}
