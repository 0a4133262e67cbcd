package httpx

import (
	"net/http"

	"atelier-be/internal/logger"
	"atelier-be/internal/metrics"
	"atelier-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth      *AuthHandler
	Customer  *CustomerHandler
	Vendor    *VendorHandler
	Inventory *InventoryHandler
	Purchase  *PurchaseHandler
	Order     *OrderHandler
	Report    *ReportHandler
}

/// NewRouter builds the HTTP surface with the full middleware chain:
// request id, request logging, auth resolution, rate limiting.
func NewRouter(h Handlers, limiter *middleware.RateLimiter, stats *metrics.RequestStats) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware(stats))
	r.Use(middleware.AuthMiddleware)
	r.Use(limiter.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.Register(r)
	h.Customer.Register(r)
	h.Vendor.Register(r)
	h.Inventory.Register(r)
	h.Purchase.Register(r)
	h.Order.Register(r)
	h.Report.Register(r)

	return r
}
