package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Kunal1519/blind-invoice-creator-pro/internal/config"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/database"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/document"
	apiHttp "github.com/Kunal1519/blind-invoice-creator-pro/internal/http"
	documentHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/document"
	importHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/importcsv"
	invoiceHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/invoice"
	masterdataHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/masterdata"
	settingsHandler "github.com/Kunal1519/blind-invoice-creator-pro/internal/http/settings"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/importer"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice"
	invoiceStore "github.com/Kunal1519/blind-invoice-creator-pro/internal/invoice/store"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata"
	masterdataStore "github.com/Kunal1519/blind-invoice-creator-pro/internal/masterdata/store"
	"github.com/Kunal1519/blind-invoice-creator-pro/internal/settings"
	settingsStore "github.com/Kunal1519/blind-invoice-creator-pro/internal/settings/store"
)

func main() {
	// Missing .env is fine; envconfig falls back to defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		invoiceService    = invoice.NewService(invoiceStore.New(db))
		masterdataService = masterdata.NewService(masterdataStore.New(db))
		settingsService   = settings.NewService(settingsStore.New(db))
		importService     = importer.NewService()
		renderer          = document.NewRenderer()
	)

	var (
		invoiceH    = invoiceHandler.NewHandler(invoiceService, masterdataService)
		masterdataH = masterdataHandler.NewHandler(masterdataService)
		settingsH   = settingsHandler.NewHandler(settingsService)
		importH     = importHandler.NewHandler(importService, masterdataService)
		documentH   = documentHandler.NewHandler(renderer, invoiceService, masterdataService, settingsService, cfg.Share.WhatsAppNumber)
	)

	router := apiHttp.New(invoiceH, masterdataH, settingsH, importH, documentH, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
