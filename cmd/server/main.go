package main

import (
	"log"
	"net/http"

	"atelier-be/internal/config"
	"atelier-be/internal/customer"
	"atelier-be/internal/dashboard"
	"atelier-be/internal/db"
	"atelier-be/internal/httpx"
	"atelier-be/internal/item"
	"atelier-be/internal/logger"
	"atelier-be/internal/metrics"
	"atelier-be/internal/middleware"
	"atelier-be/internal/order"
	"atelier-be/internal/purchase"
	"atelier-be/internal/report"
	"atelier-be/internal/user"
	"atelier-be/internal/vendor"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userSvc := user.NewService(user.NewRepository(database))
	customerSvc := customer.NewService(customer.NewRepository(database))
	vendorSvc := vendor.NewService(vendor.NewRepository(database))
	itemSvc := item.NewService(item.NewRepository(database))
	purchaseSvc := purchase.NewService(purchase.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))
	reportSvc := report.NewService(report.NewRepository(database))
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(database))

	limiter := middleware.NewRateLimiter()
	defer limiter.Stop()

	stats := &metrics.RequestStats{}

	router := httpx.NewRouter(httpx.Handlers{
		Auth:      &httpx.AuthHandler{UserSvc: userSvc},
		Customer:  &httpx.CustomerHandler{CustomerSvc: customerSvc},
		Vendor:    &httpx.VendorHandler{VendorSvc: vendorSvc},
		Inventory: &httpx.InventoryHandler{ItemSvc: itemSvc},
		Purchase:  &httpx.PurchaseHandler{PurchaseSvc: purchaseSvc},
		Order:     &httpx.OrderHandler{OrderSvc: orderSvc},
		Report:    &httpx.ReportHandler{ReportSvc: reportSvc, DashboardSvc: dashboardSvc},
	}, limiter, stats)

	log.Printf("🚀 Server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
