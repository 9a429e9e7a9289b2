package main

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apereira/fluxo/internal/config"
	"github.com/apereira/fluxo/internal/database"
	"github.com/apereira/fluxo/internal/database/repository"
	"github.com/apereira/fluxo/internal/server"
	"github.com/apereira/fluxo/internal/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("FLUXO_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.WithError(err).Fatal("mkdir db dir")
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.WithError(err).Fatal("run migrations")
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Fatal("open db")
	}
	defer db.Close()

	txRepo := repository.NewTransactionRepo(db)
	incomeRepo := repository.NewIncomeRepo(db)
	recurringRepo := repository.NewRecurringRepo(db)
	budgetRepo := repository.NewBudgetRepo(db)
	expenseRepo := repository.NewDailyExpenseRepo(db)

	loader := &service.SnapshotLoader{
		Transactions:  txRepo,
		Incomes:       incomeRepo,
		Recurring:     recurringRepo,
		Budgets:       budgetRepo,
		DailyExpenses: expenseRepo,
	}
	projections := &service.ProjectionService{Loader: loader, Log: log}
	records := &service.RecordService{
		Transactions:  txRepo,
		Incomes:       incomeRepo,
		Recurring:     recurringRepo,
		Budgets:       budgetRepo,
		DailyExpenses: expenseRepo,
		Log:           log,
	}

	maintenance := &service.MaintenanceService{DB: db}

	srv := server.New(projections, records, maintenance, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.WithField("addr", cfg.Server.Addr).Info("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
