package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voucher-settlement/config"
	"voucher-settlement/internal/adapter/gateway/netbank"
	"voucher-settlement/internal/adapter/notify"
	pgStorage "voucher-settlement/internal/adapter/storage/postgres"
	redisStorage "voucher-settlement/internal/adapter/storage/redis"
	"voucher-settlement/internal/service"
	"voucher-settlement/pkg/logger"

	"github.com/rs/zerolog"
)

// The worker drives the two periodic jobs: polling in-flight
// disbursements to a terminal status and refreshing the custodial
// balance snapshot.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Dur("status_poll_interval", cfg.Worker.StatusPollInterval).
		Dur("balance_check_interval", cfg.Worker.BalanceCheckInterval).
		Msg("Starting Voucher Settlement worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	voucherRepo := pgStorage.NewVoucherRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	voucherLock := redisStorage.NewVoucherLock(rdb, log)
	events := redisStorage.NewEventPublisher(rdb, log)

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

	statusSvc := service.NewDisbursementStatusService(bankGateway, voucherRepo, voucherLock, events, log)
	balanceSvc := service.NewBalanceService(
		bankGateway,
		balanceRepo,
		transactor,
		notify.NewRouter(log),
		service.BalanceConfig{
			DefaultAccount:  cfg.Balance.DefaultAccount,
			AlertThreshold:  cfg.Balance.AlertThreshold,
			AlertRecipients: cfg.Balance.AlertRecipients,
		},
		log,
	)

	go pollStatuses(ctx, statusSvc, cfg.Worker, log)
	go checkBalance(ctx, balanceSvc, cfg.Worker, log)

	<-ctx.Done()
	log.Info().Msg("Worker shutting down")

	// Give in-flight iterations a moment to finish.
	time.Sleep(time.Second)
	log.Info().Msg("Worker exited")
}

func pollStatuses(ctx context.Context, svc *service.DisbursementStatusServiceImpl, cfg config.WorkerConfig, log zerolog.Logger) {
	ticker := time.NewTicker(cfg.StatusPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updated, err := svc.UpdatePendingVouchers(ctx, cfg.StatusPollBatchSize)
			if err != nil {
				log.Error().Err(err).Msg("status poll failed")
				continue
			}
			if updated > 0 {
				log.Info().Int("updated", updated).Msg("disbursement statuses updated")
			}
		}
	}
}

func checkBalance(ctx context.Context, svc *service.BalanceServiceImpl, cfg config.WorkerConfig, log zerolog.Logger) {
	ticker := time.NewTicker(cfg.BalanceCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := svc.CheckAndUpdate(ctx, "")
			if err != nil {
				log.Error().Err(err).Msg("balance check failed")
				continue
			}
			log.Info().
				Str("account", snap.AccountNumber).
				Int64("balance", snap.Balance).
				Msg("balance snapshot refreshed")
		}
	}
}
