package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jmcardenas/centavo/internal/auth"
	"github.com/jmcardenas/centavo/internal/bill"
	billStore "github.com/jmcardenas/centavo/internal/bill/store"
	"github.com/jmcardenas/centavo/internal/config"
	"github.com/jmcardenas/centavo/internal/database"
	"github.com/jmcardenas/centavo/internal/export"
	"github.com/jmcardenas/centavo/internal/goal"
	goalStore "github.com/jmcardenas/centavo/internal/goal/store"
	centavoHttp "github.com/jmcardenas/centavo/internal/http"
	billHandler "github.com/jmcardenas/centavo/internal/http/bill"
	exportHandler "github.com/jmcardenas/centavo/internal/http/export"
	goalHandler "github.com/jmcardenas/centavo/internal/http/goal"
	importHandler "github.com/jmcardenas/centavo/internal/http/importcsv"
	savingsHandler "github.com/jmcardenas/centavo/internal/http/savings"
	sessionHandler "github.com/jmcardenas/centavo/internal/http/session"
	summaryHandler "github.com/jmcardenas/centavo/internal/http/summary"
	txHandler "github.com/jmcardenas/centavo/internal/http/transaction"
	"github.com/jmcardenas/centavo/internal/importer"
	"github.com/jmcardenas/centavo/internal/ledger"
	ledgerStore "github.com/jmcardenas/centavo/internal/ledger/store"
	"github.com/jmcardenas/centavo/internal/matching"
	matchingStore "github.com/jmcardenas/centavo/internal/matching/store"
	"github.com/jmcardenas/centavo/internal/posting"
	"github.com/jmcardenas/centavo/internal/savings"
	savingsStore "github.com/jmcardenas/centavo/internal/savings/store"
	"github.com/jmcardenas/centavo/internal/summary"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authenticator := auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		goalService     = goal.NewService(goalStore.New(db))
		billService     = bill.NewService(billStore.New(db))
		savingsService  = savings.NewService(savingsStore.New(db))
		postingService  = posting.NewService(ledgerService, goalService, billService, savingsService)
		summaryService  = summary.NewService(ledgerService, goalService, billService, savingsService)
		importService   = importer.NewService()
		matchingService = matching.NewService(matchingStore.New(db))
		exportService   = export.NewService(ledgerService)
	)

	var (
		sessionH = sessionHandler.NewHandler(authenticator)
		txH      = txHandler.NewHandler(ledgerService)
		goalH    = goalHandler.NewHandler(goalService, postingService)
		billH    = billHandler.NewHandler(billService, postingService)
		savingsH = savingsHandler.NewHandler(savingsService, postingService)
		summaryH = summaryHandler.NewHandler(summaryService)
		importH  = importHandler.NewHandler(importService, ledgerService, matchingService)
		exportH  = exportHandler.NewHandler(exportService)
	)

	router := centavoHttp.New(
		authenticator,
		cfg.CORS.AllowedOrigins,
		sessionH,
		txH,
		goalH,
		billH,
		savingsH,
		summaryH,
		importH,
		exportH,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
