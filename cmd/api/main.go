package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pillars/internal/config"
	"github.com/MrJamesThe3rd/pillars/internal/export"
	"github.com/MrJamesThe3rd/pillars/internal/financial"
	pillarsHttp "github.com/MrJamesThe3rd/pillars/internal/http"
	dashboardHandler "github.com/MrJamesThe3rd/pillars/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/pillars/internal/http/export"
	financialHandler "github.com/MrJamesThe3rd/pillars/internal/http/financial"
	importHandler "github.com/MrJamesThe3rd/pillars/internal/http/importcsv"
	intellectualHandler "github.com/MrJamesThe3rd/pillars/internal/http/intellectual"
	physicalHandler "github.com/MrJamesThe3rd/pillars/internal/http/physical"
	spiritualHandler "github.com/MrJamesThe3rd/pillars/internal/http/spiritual"
	"github.com/MrJamesThe3rd/pillars/internal/importer"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/seed"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	data, err := seed.Load()
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	var (
		financialService    = financial.NewService(data.Financial)
		intellectualService = intellectual.NewService(data.Intellectual)
		physicalService     = physical.NewService(data.Physical)
		spiritualService    = spiritual.NewService(data.Spiritual)
		importService       = importer.NewService()
		exportService       = export.NewService(financialService)
	)

	var (
		financialH    = financialHandler.NewHandler(financialService)
		intellectualH = intellectualHandler.NewHandler(intellectualService)
		physicalH     = physicalHandler.NewHandler(physicalService)
		spiritualH    = spiritualHandler.NewHandler(spiritualService)
		dashboardH    = dashboardHandler.NewHandler(financialService, intellectualService, physicalService, spiritualService)
		importH       = importHandler.NewHandler(importService, financialService)
		exportH       = exportHandler.NewHandler(exportService, cfg.Export.Dir)
	)

	router := pillarsHttp.New(financialH, intellectualH, physicalH, spiritualH, dashboardH, importH, exportH, cfg.Server.CORSOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
