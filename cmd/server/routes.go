package main

import (
	"time"

	"savingsbook/internal/handlers"
	"savingsbook/internal/middleware"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	tokens       services.TokenServiceInterface
	savings      services.SavingsServiceInterface
	regulations  services.RegulationStoreInterface
	reports      services.ReportAggregatorInterface
	savingsTypes services.SavingsTypeServiceInterface
	location     *time.Location
	registry     *prometheus.Registry
}

func registerRoutes(e *echo.Echo, deps routeDeps) {
	health := handlers.NewHealthCheckHandler(deps.savings)
	accounts := handlers.NewAccountHandler(deps.savings)
	transactions := handlers.NewTransactionHandler(deps.savings)
	regulations := handlers.NewRegulationHandler(deps.regulations)
	reports := handlers.NewReportHandler(deps.reports, deps.location)
	savingsTypes := handlers.NewSavingsTypeHandler(deps.savingsTypes)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		prometheus.Gatherers{deps.registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{},
	)))

	api := e.Group("/api/v1", middleware.RequireAuth(deps.tokens))

	accountGroup := api.Group("/accounts")
	accountGroup.GET("", accounts.SearchAccounts)
	accountGroup.POST("", accounts.OpenAccount, middleware.RequireTeller())
	accountGroup.GET("/:accountId", accounts.GetAccount)
	accountGroup.GET("/:accountId/transactions", accounts.ListTransactions)
	accountGroup.GET("/:accountId/reconcile", accounts.Reconcile, middleware.RequireAccountant())
	accountGroup.POST("/:accountId/deposits", transactions.Deposit, middleware.RequireTeller())
	accountGroup.POST("/:accountId/withdrawals", transactions.Withdraw, middleware.RequireTeller())
	accountGroup.POST("/:accountId/close", transactions.CloseAtMaturity, middleware.RequireTeller())

	regulationGroup := api.Group("/regulations")
	regulationGroup.GET("", regulations.GetCurrent)
	regulationGroup.PUT("", regulations.UpdateRegulation, middleware.RequireAdmin())
	regulationGroup.GET("/history", regulations.History)

	reportGroup := api.Group("/reports", middleware.RequireAccountant())
	reportGroup.GET("/daily", reports.DailyReport)
	reportGroup.GET("/monthly", reports.MonthlyReport)
	reportGroup.GET("/dashboard", reports.Dashboard)
	reportGroup.GET("/recent-transactions", reports.RecentTransactions)

	typeGroup := api.Group("/savings-types")
	typeGroup.GET("", savingsTypes.ListSavingsTypes)
	typeGroup.GET("/:savingsTypeId", savingsTypes.GetSavingsType)
	typeGroup.POST("", savingsTypes.CreateSavingsType, middleware.RequireAdmin())
	typeGroup.PATCH("/:savingsTypeId", savingsTypes.UpdateSavingsType, middleware.RequireAdmin())
	typeGroup.DELETE("/:savingsTypeId", savingsTypes.DeactivateSavingsType, middleware.RequireAdmin())
}
