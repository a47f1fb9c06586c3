package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/salary-slips/internal/infra/http/handlers"
	metrics "github.com/xavierca1/salary-slips/internal/infra/http/middleware"
)

type routeHandlers struct {
	Index    *handlers.IndexHandler
	Upload   *handlers.UploadHandler
	Employee *handlers.EmployeeHandler
	Export   *handlers.ExportHandler
	Email    *handlers.EmailHandler
	Health   *handlers.HealthHandler
}

func newRouter(h routeHandlers, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Export-Batch", "X-Export-Succeeded", "X-Export-Failed"},
	}))

	r.Get("/", h.Index.Handle)
	r.Post("/upload", h.Upload.Handle)
	r.Post("/search", h.Employee.HandleSearch)
	r.Get("/get_employee/{id}", h.Employee.HandleGet)
	r.Get("/get_columns", h.Employee.HandleColumns)

	r.Get("/export/excel/{id}", h.Export.HandleExcel)
	r.Get("/export/pdf/{id}", h.Export.HandlePDF)
	r.Post("/export/bulk", h.Export.HandleBulk)

	r.Post("/send_email/{id}", h.Email.HandleSend)
	r.Post("/send_email_bulk", h.Email.HandleSendBulk)
	r.Get("/email_status", h.Email.HandleStatus)
	r.Post("/configure_email", h.Email.HandleConfigure)
	r.Get("/email_config", h.Email.HandleConfig)

	r.Get("/healthz", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
