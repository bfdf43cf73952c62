package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"godown-dashboard/http-server/analytics"
	catalogdelete "godown-dashboard/http-server/catalog/delete"
	cataloget "godown-dashboard/http-server/catalog/get"
	catalogsave "godown-dashboard/http-server/catalog/save"
	catalogupdate "godown-dashboard/http-server/catalog/update"
	"godown-dashboard/http-server/datasources"
	"godown-dashboard/http-server/expenses"
	getemployees "godown-dashboard/http-server/employees/get"
	saveemployees "godown-dashboard/http-server/employees/save"
	upemployees "godown-dashboard/http-server/employees/update"
	generate_excel "godown-dashboard/http-server/generate-report/generate-excel"
	"godown-dashboard/http-server/sales"
	"godown-dashboard/http-server/settings"
	deleteentries "godown-dashboard/http-server/work-entries/delete"
	getentries "godown-dashboard/http-server/work-entries/get"
	saveentries "godown-dashboard/http-server/work-entries/save"
	upentries "godown-dashboard/http-server/work-entries/update"
	"godown-dashboard/internal/config"
	"godown-dashboard/internal/service/export"
	"godown-dashboard/internal/service/importer"
	"godown-dashboard/internal/service/production"
	"godown-dashboard/internal/service/salesreport"
	"godown-dashboard/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage,
	salesService *salesreport.Service, productionService *production.Service,
	importService *importer.Service, exportService *export.Service) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Employees
	router.Get("/api/employees", getemployees.GetEmployees(log, storage))
	router.Get("/api/employees/active", getemployees.GetActiveEmployees(log, storage))
	router.Post("/api/employees", saveemployees.SaveEmployee(log, storage))
	router.Put("/api/employees/{id}", upemployees.UpdateEmployee(log, storage))
	router.Patch("/api/employees/{id}/toggle", upemployees.ToggleEmployee(log, storage))

	// Name-only catalogs share one handler set per table
	catalogs := map[string]string{
		"/api/work-types":         "work_types",
		"/api/products":           "products",
		"/api/units":              "units",
		"/api/expense-categories": "expense_categories",
	}
	for route, table := range catalogs {
		router.Get(route, cataloget.GetCatalog(log, storage, table))
		router.Post(route, catalogsave.SaveCatalogItem(log, storage, table))
		router.Put(route+"/{id}", catalogupdate.UpdateCatalogItem(log, storage, table))
		router.Delete(route+"/{id}", catalogdelete.DeleteCatalogItem(log, storage, table))
	}

	// Work entries
	router.Get("/api/work-entries", getentries.GetWorkEntries(log, storage))
	router.Post("/api/work-entries", saveentries.SaveWorkEntry(log, storage))
	router.Put("/api/work-entries/{id}/complete", upentries.CompleteWorkEntry(log, storage))
	router.Put("/api/work-entries/{id}", upentries.UpdateWorkEntry(log, storage))
	router.Delete("/api/work-entries/{id}", deleteentries.DeleteWorkEntry(log, storage))

	// Expenses
	router.Get("/api/expenses", expenses.GetExpenses(log, storage))
	router.Post("/api/expenses", expenses.SaveExpense(log, storage))
	router.Put("/api/expenses/{id}", expenses.UpdateExpense(log, storage))
	router.Patch("/api/expenses/{id}/status", expenses.UpdateExpenseStatus(log, storage))
	router.Delete("/api/expenses/{id}", expenses.DeleteExpense(log, storage))

	// Settings
	router.Get("/api/settings", settings.GetSettings(log, storage))
	router.Put("/api/settings", settings.SaveSettings(log, storage))

	// Data sources
	router.Get("/api/data-sources", datasources.GetDataSources(log, storage))
	router.Post("/api/data-sources", datasources.SaveDataSource(log, storage))
	router.Post("/api/data-sources/{id}/import", datasources.ImportDataSource(log, importService))
	router.Delete("/api/data-sources/{id}", datasources.DeleteDataSource(log, storage))

	// Analytics
	router.Get("/api/analytics/productivity", analytics.GetProductivity(log, productionService))
	router.Get("/api/analytics/daily-report", analytics.GetDailyReport(log, productionService))
	router.Get("/api/sales-analysis", sales.GetSalesAnalysis(log, salesService))

	// Excel download
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, exportService))

	// Static SPA
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		// SPA fallback
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
