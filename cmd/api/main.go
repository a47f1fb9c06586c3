package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/config"
	"github.com/xavierca1/salary-slips/internal/infra/http/handlers"
	"github.com/xavierca1/salary-slips/internal/infra/logger"
	"github.com/xavierca1/salary-slips/internal/infra/mail"
	"github.com/xavierca1/salary-slips/internal/infra/memory"
	"github.com/xavierca1/salary-slips/internal/infra/render"
	"github.com/xavierca1/salary-slips/internal/infra/spreadsheet"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	// 1. Stores
	employees := memory.NewEmployeeRepository()
	statuses := memory.NewEmailStatusRepository()
	smtp := memory.NewSmtpSettings(cfg.Smtp)

	// 2. Adapters
	importer := spreadsheet.NewImporter()
	pdf, err := render.LoadPDFRenderer(cfg.PDFFontPath, cfg.PDFBoldPath)
	if err != nil {
		zl.Fatal("load pdf font", zap.Error(err))
	}
	slips := render.NewSlipRenderer(pdf, render.NewExcelRenderer())
	mailer, err := mail.NewEmailSender()
	if err != nil {
		zl.Fatal("load email template", zap.Error(err))
	}

	// 3. Use cases
	importUC := usecase.NewImportWorkbookUseCase(importer, employees, statuses, zl)
	searchUC := usecase.NewSearchEmployeesUseCase(employees)
	getUC := usecase.NewGetEmployeeUseCase(employees)
	exportUC := usecase.NewExportSlipUseCase(employees, slips, zl)
	bulkUC := usecase.NewBulkExportUseCase(employees, slips, cfg.ExportWorkers, zl)
	sendUC := usecase.NewSendSlipEmailUseCase(employees, slips, mailer, smtp, statuses, cfg.EmailWorkers, zl)
	settingsUC := usecase.NewEmailSettingsUseCase(smtp, statuses, zl)

	// 4. Handlers
	index, err := handlers.NewIndexHandler(getUC, settingsUC, zl)
	if err != nil {
		zl.Fatal("load index template", zap.Error(err))
	}
	router := newRouter(routeHandlers{
		Index:    index,
		Upload:   handlers.NewUploadHandler(importUC, cfg.MaxUploadMB<<20, zl),
		Employee: handlers.NewEmployeeHandler(searchUC, getUC, zl),
		Export:   handlers.NewExportHandler(exportUC, bulkUC, zl),
		Email:    handlers.NewEmailHandler(sendUC, settingsUC, zl),
		Health:   handlers.NewHealthHandler(employees, smtp, cfg.PDFFontPath),
	}, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("salary slip server listening", zap.String("addr", srv.Addr), zap.Bool("smtp_configured", cfg.Smtp.Configured()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown", zap.Error(err))
	}
}
