package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "loanapi/internal/adapter/http"
	mw "loanapi/internal/adapter/middleware"
	"loanapi/internal/adapter/repository/mysql"
	"loanapi/internal/config"
	customerDomain "loanapi/internal/domain/customer"
	loanDomain "loanapi/internal/domain/loan"
	userDomain "loanapi/internal/domain/user"
	"loanapi/internal/infrastructure/cache"
	"loanapi/internal/infrastructure/db"

	"loanapi/internal/access"
	authUC "loanapi/internal/usecase/auth"
	loanUC "loanapi/internal/usecase/loan"
	paymentUC "loanapi/internal/usecase/payment"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&customerDomain.Customer{},
		&loanDomain.Loan{},
		&loanDomain.Installment{},
		&userDomain.User{},
	); err != nil {
		logger.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	unit := mysql.NewGormUoW(gdb)
	policy := access.NewPolicy(users)

	loanSvc := loanUC.NewUsecase(unit, loans, installments, policy, logger)
	paymentSvc := paymentUC.NewUsecase(unit, policy, logger)
	authSvc := authUC.NewUsecase(users, cfg.JWTSecret, time.Duration(cfg.JWTTTLMins)*time.Minute, logger)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authSvc)
	loanH := httpadp.NewLoanHandler(loanSvc)
	payH := httpadp.NewPaymentHandler(paymentSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/auth/login", authH.Login)

	authed := api.Group("", mw.JWTAuth([]byte(cfg.JWTSecret)))
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	authed.POST("/loans", loanH.CreateLoan, idemp)
	authed.POST("/admin/loans", loanH.CreateLoanByAdmin, idemp)
	authed.GET("/loans", loanH.ListLoans)
	authed.GET("/loans/:loan_id", loanH.GetLoan)
	authed.GET("/loans/:loan_id/installments", loanH.ListInstallments)
	authed.POST("/loans/:loan_id/pay", payH.PayLoan, idemp)

	addr := ":" + cfg.AppPort
	logger.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		logger.Fatal(err)
	}
}
