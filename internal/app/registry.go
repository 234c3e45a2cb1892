package app

import (
	"go-salary/internal/employeesalary"
	"go-salary/internal/health"
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	employeeSalaryRepo employeesalary.Repository,
	publisher employeesalary.EventPublisher,
	storePinger health.Pinger,
) {
	logger := zap.L()

	router.Use(
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
	)

	// --- Services ---
	employeeSalaryService := employeesalary.NewService(employeeSalaryRepo, publisher)

	// --- Handlers ---
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService)
	healthHandler := health.NewHandler(storePinger)

	// --- Routes Registration ---
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("/api/v1")
	{
		employeesalary.RegisterRoutes(api, employeeSalaryHandler)
	}
}
