package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "sibbap-loan-engine/internal/adapter/http"
	mysqlrepo "sibbap-loan-engine/internal/adapter/repository/mysql"
	"sibbap-loan-engine/internal/config"
	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	"sibbap-loan-engine/internal/infrastructure/cache"
	"sibbap-loan-engine/internal/infrastructure/db"
	quoteUC "sibbap-loan-engine/internal/usecase/quote"
	repaymentUC "sibbap-loan-engine/internal/usecase/repayment"
	scheduleUC "sibbap-loan-engine/internal/usecase/schedule"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	table, err := cfg.LoadPolicyTable()
	if err != nil {
		log.Fatalf("policy table: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// The quote cache is an optimization; the service runs without it.
	var quoteCache quoteUC.Cache
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, quote replay disabled: %v", err)
	} else {
		quoteCache = cache.NewQuoteCache(rdb, time.Duration(cfg.QuoteCacheTTLSecs)*time.Second)
	}

	quoteRepo := mysqlrepo.NewQuoteRepository(gdb)
	schedRepo := mysqlrepo.NewScheduleRepository(gdb)

	quotes := quoteUC.NewUsecase(quoteDomain.NewBuilder(table), quoteRepo, quoteCache)
	schedules := scheduleUC.NewUsecase(quoteRepo, schedRepo)
	repayments := repaymentUC.NewUsecase(schedRepo)

	h := httpadp.NewHandler()
	qh := httpadp.NewQuoteHandler(quotes)
	sh := httpadp.NewScheduleHandler(schedules, repayments)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/quotes", qh.CreateQuote)
	e.GET("/quotes/:quote_id", qh.GetQuote)
	e.POST("/quotes/:quote_id/schedule", sh.GenerateSchedule)
	e.GET("/quotes/:quote_id/schedule", sh.GetSchedule)
	e.POST("/quotes/:quote_id/installments/:sequence/pay", sh.PayInstallment)
	e.POST("/schedules/overdue-sweep", sh.SweepOverdue)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
