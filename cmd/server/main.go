package main

import (
	"context"
	"log"

	"go-doormint-ledger/config"
	"go-doormint-ledger/internal/auth"
	"go-doormint-ledger/internal/cache"
	"go-doormint-ledger/internal/clock"
	"go-doormint-ledger/internal/database"
	"go-doormint-ledger/internal/handler"
	"go-doormint-ledger/internal/queue"
	"go-doormint-ledger/internal/repository"
	"go-doormint-ledger/internal/service"
	"go-doormint-ledger/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	ledgerQueue, err := queue.NewRedisStreamLedgerQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize ledger queue: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	issuanceRepo := repository.NewIssuanceRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)

	policy := auth.NewRBACPolicy(eventRepo, cfg.Auth.AdminIDs)
	supplyCache := cache.NewRedisSupplyCache(rdb)
	clk := clock.NewSystem()

	eventService := service.NewEventService(eventRepo, ledgerQueue, clk)
	entryService := service.NewEntryService(pool, eventRepo, issuanceRepo, policy, ledgerQueue, clk)
	tokenService := service.NewTokenService(pool, tokenRepo, eventRepo, policy, ledgerQueue, clk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ledgerWorker := worker.NewLedgerWorker(entryService, supplyCache, ledgerQueue)
	if err := ledgerWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start ledger worker: %v", err)
	}

	router := gin.Default()
	router.Use(handler.CallerIdentity())

	handler.NewEventHandler(eventService, supplyCache).RegisterRoutes(router)
	handler.NewEntryHandler(entryService).RegisterRoutes(router)
	handler.NewTokenHandler(tokenService).RegisterRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
