package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spendwise/expense-tracker/internal/api/handler"
	"github.com/spendwise/expense-tracker/internal/core/service"
	mongostore "github.com/spendwise/expense-tracker/internal/infrastructure/db/mongo"
	redisstore "github.com/spendwise/expense-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("expense_tracker"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	transactionRepo := mongostore.NewTransactionRepository(db)
	budgetRepo := mongostore.NewBudgetRepository(db)
	dedup := redisstore.NewDedupChecker(rdb)

	accountService := service.NewAccountService(accountRepo, log)
	authService := service.NewAuthService(accountService, log)
	transactionService := service.NewTransactionService(transactionRepo, dedup, log)
	budgetService := service.NewBudgetService(budgetRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	budgetHandler := handler.NewBudgetHandler(budgetService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Account routes ---
	e.POST("/accounts", accountHandler.Create)
	e.GET("/accounts", accountHandler.List)
	e.GET("/accounts/:id", accountHandler.Get)
	e.PUT("/accounts/:id", accountHandler.Rename)
	e.DELETE("/accounts/:id", accountHandler.Delete)

	// --- Transaction routes ---
	e.POST("/transactions", transactionHandler.Add)
	e.GET("/transactions/:account_id", transactionHandler.List)
	e.PUT("/transactions/:id", transactionHandler.Update)
	e.DELETE("/transactions/:id", transactionHandler.Delete)

	// --- Budget routes ---
	e.POST("/budgets", budgetHandler.Set)
	e.GET("/budgets", budgetHandler.List)
	e.GET("/budgets/:account_id", budgetHandler.Current)
	e.PUT("/budgets/:id", budgetHandler.Update)
	e.DELETE("/budgets/:id", budgetHandler.Delete)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
