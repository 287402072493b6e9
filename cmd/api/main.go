package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voucher-settlement/config"
	"voucher-settlement/internal/adapter/gateway/netbank"
	httpHandler "voucher-settlement/internal/adapter/http/handler"
	"voucher-settlement/internal/adapter/notify"
	pgStorage "voucher-settlement/internal/adapter/storage/postgres"
	redisStorage "voucher-settlement/internal/adapter/storage/redis"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/internal/service"
	"voucher-settlement/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Voucher Settlement API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	voucherRepo := pgStorage.NewVoucherRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	voucherLock := redisStorage.NewVoucherLock(rdb, log)
	events := redisStorage.NewEventPublisher(rdb, log)

	// Initialize gateway client
	bankGateway := netbank.NewClient(netbank.Config{
		BaseURL:        cfg.NetBank.BaseURL,
		TokenURL:       cfg.NetBank.TokenURL,
		ClientID:       cfg.NetBank.ClientID,
		ClientSecret:   cfg.NetBank.ClientSecret,
		SourceAccount:  cfg.NetBank.SourceAccount,
		SenderName:     cfg.NetBank.SenderName,
		InstaPayFee:    cfg.NetBank.InstaPayFee,
		PESONetFee:     cfg.NetBank.PESONetFee,
		RequestTimeout: cfg.NetBank.RequestTimeout,
	}, log)

	// Initialize core services
	secretSvc := service.NewArgon2SecretService()
	guard := service.NewDefaultRedemptionGuard(secretSvc, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	disbursementSvc := service.NewDisbursementService(
		bankGateway,
		voucherRepo,
		walletRepo,
		service.DisbursementConfig{
			MinimumAmount: cfg.Disbursement.MinimumAmount,
			Currency:      cfg.Disbursement.Currency,
		},
		log,
	)
	statusSvc := service.NewDisbursementStatusService(bankGateway, voucherRepo, voucherLock, events, log)
	reconciliationSvc := service.NewReconciliationService(
		walletRepo,
		balanceRepo,
		bankGateway,
		service.ReconciliationConfig{
			Enabled:                 cfg.Reconciliation.Enabled,
			BufferAmount:            cfg.Reconciliation.BufferAmount,
			BufferPercent:           cfg.Reconciliation.BufferPercent,
			WarningThresholdPercent: cfg.Reconciliation.WarningThresholdPercent,
			BlockGeneration:         cfg.Reconciliation.BlockGeneration,
			AllowOvergeneration:     cfg.Reconciliation.AllowOvergeneration,
			Override:                cfg.Reconciliation.Override,
			SuppressWarnings:        cfg.Reconciliation.SuppressWarnings,
			DefaultAccount:          cfg.Reconciliation.DefaultAccount,
		},
		log,
	)
	notifier := notify.NewRouter(log)
	balanceSvc := service.NewBalanceService(
		bankGateway,
		balanceRepo,
		transactor,
		notifier,
		service.BalanceConfig{
			DefaultAccount:  cfg.Balance.DefaultAccount,
			AlertThreshold:  cfg.Balance.AlertThreshold,
			AlertRecipients: cfg.Balance.AlertRecipients,
		},
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DisbursementSvc:   disbursementSvc,
		StatusSvc:         statusSvc,
		ReconciliationSvc: reconciliationSvc,
		BalanceSvc:        balanceSvc,
		VoucherRepo:       voucherRepo,
		Guard:             guard,
		TokenSvc:          tokenSvc,
		HealthCheckers:    []ports.HealthChecker{pgHealth, redisHealth},
		Logger:            log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
