package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Yazidbusthomy27/KoperasiKita/internal/adapter/http"
	mw "github.com/Yazidbusthomy27/KoperasiKita/internal/adapter/middleware"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/adapter/repository/tabular"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/config"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/infrastructure/cache"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/infrastructure/db"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
	distuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/distribution"
	loanuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/loan"
	memberuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/member"
	txnuc "github.com/Yazidbusthomy27/KoperasiKita/internal/usecase/transaction"

	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Local durable cache, the offline side of the store adapter.
	var gdb *gorm.DB
	var err error
	switch cfg.CacheDriver {
	case config.CacheDriverMySQL:
		gdb, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		gdb, err = db.OpenSQLite(cfg.CachePath)
	}
	if err != nil {
		log.Fatal(err)
	}
	local, err := store.NewCache(gdb)
	if err != nil {
		log.Fatal(err)
	}

	var opts []store.Option
	if cfg.SheetURL == "" {
		log.Println("store: no SHEET_URL configured, running against the local cache only")
		opts = append(opts, store.StartOffline())
	}
	adapter := store.New(store.NewSheetClient(cfg.SheetURL), local, opts...)

	members := tabular.NewMemberRepository(adapter)
	txns := tabular.NewTransactionRepository(adapter)
	loans := tabular.NewLoanRepository(adapter)
	logs := tabular.NewActivityRepository(adapter)

	loanUC := loanuc.NewUsecase(loans, members)
	txnUC := txnuc.NewUsecase(members, txns, loanUC, logs)
	memberUC := memberuc.NewUsecase(members, loans, logs)
	distUC := distuc.NewUsecase(members, txns, loanUC, txnUC, logs)

	h := httpadp.NewHandler()
	mh := httpadp.NewMemberHandler(memberUC)
	th := httpadp.NewTransactionHandler(txnUC)
	lh := httpadp.NewLoanHandler(loanUC)
	dh := httpadp.NewDistributionHandler(distUC)
	ah := httpadp.NewActivityHandler(logs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// Duplicate-submission protection on mutating routes, when redis is
	// available. The ledger still works without it.
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Printf("redis unavailable, mutations run without idempotency guard: %v", err)
		} else {
			e.Use(mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		}
	}

	e.GET("/health", h.Health)

	e.GET("/members", mh.ListMembers)
	e.POST("/members", mh.CreateMember)
	e.GET("/members/:member_id", mh.GetMember)
	e.PUT("/members/:member_id", mh.UpdateMember)

	e.GET("/transactions", th.ListTransactions)
	e.POST("/transactions", th.CreateTransaction)
	e.DELETE("/transactions/:transaction_id", th.DeleteTransaction)

	e.GET("/loans", lh.ListLoans)
	e.POST("/loans", lh.DisburseLoan)

	e.GET("/distribution/summary", dh.Summary)
	e.POST("/distribution/preview", dh.Preview)
	e.POST("/distribution/execute", dh.Execute)

	e.GET("/activity", ah.ListEntries)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
