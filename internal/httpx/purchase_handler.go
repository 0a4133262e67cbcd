package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/middleware"
	"atelier-be/internal/purchase"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	PurchaseSvc purchase.Service
}

func (h *PurchaseHandler) Register(r chi.Router) {
	r.Route("/purchases", func(r chi.Router) {
		r.With(middleware.RequirePermission("purchases", "create")).Post("/", h.record)
		r.With(middleware.RequirePermission("purchases", "read")).Get("/", h.list)
	})
}

type recordPurchaseReq struct {
	VendorID  string          `json:"vendorId"`
	ItemID    string          `json:"itemId"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Date      string          `json:"date"`
	Notes     *string         `json:"notes,omitempty"`
}

func (h *PurchaseHandler) record(w http.ResponseWriter, r *http.Request) {
	var req recordPurchaseReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, "purchase date must be a valid date", http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	p, err := h.PurchaseSvc.RecordPurchase(r.Context(), id.WorkspaceID, purchase.RecordPurchaseInput{
		VendorID:  req.VendorID,
		ItemID:    req.ItemID,
		Qty:       req.Qty,
		UnitPrice: req.UnitPrice,
		Date:      date,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writePurchaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPurchaseDTO(p))
}

func (h *PurchaseHandler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	purchases, err := h.PurchaseSvc.List(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toPurchaseDTOs(purchases))
}

func (h *PurchaseHandler) writePurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purchase.ErrVendorNotFound), errors.Is(err, purchase.ErrItemNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, purchase.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
