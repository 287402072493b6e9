package handler

import (
	"net/http"

	"voucher-settlement/internal/adapter/http/middleware"
	"voucher-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DisbursementSvc   ports.DisbursementService
	StatusSvc         ports.DisbursementStatusService
	ReconciliationSvc ports.ReconciliationService
	BalanceSvc        ports.BalanceService
	VoucherRepo       ports.VoucherRepository
	Guard             ports.RedemptionChecker
	TokenSvc          ports.TokenService
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// All ops endpoints require a bearer token.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	reconciliationHandler := NewReconciliationHandler(deps.ReconciliationSvc)
	reconciliation := v1.Group("/reconciliation")
	{
		reconciliation.GET("", reconciliationHandler.GetStatus)
		reconciliation.POST("/generation-check", reconciliationHandler.CheckGeneration)
	}

	balanceHandler := NewBalanceHandler(deps.BalanceSvc)
	balance := v1.Group("/balance")
	{
		balance.GET("", balanceHandler.GetBalance)
		balance.POST("/check", balanceHandler.Refresh)
		balance.GET("/history", balanceHandler.GetHistory)
		balance.GET("/trend", balanceHandler.GetTrend)
		balance.POST("/alerts", balanceHandler.CreateAlert)
	}

	disbursementHandler := NewDisbursementHandler(deps.DisbursementSvc, deps.VoucherRepo)
	v1.POST("/disbursements", disbursementHandler.Disburse)

	voucherHandler := NewVoucherHandler(deps.VoucherRepo, deps.StatusSvc, deps.Guard)
	vouchers := v1.Group("/vouchers")
	{
		vouchers.POST("/:code/status/refresh", voucherHandler.RefreshStatus)
		vouchers.POST("/:code/redemption-check", voucherHandler.CheckRedemption)
	}

	return r
}

// HealthCheck pings every dependency and reports per-dependency status.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
