package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/item"
	"atelier-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	ItemSvc item.Service
}

func (h *InventoryHandler) Register(r chi.Router) {
	r.Route("/items", func(r chi.Router) {
		r.With(middleware.RequirePermission("inventory", "create")).Post("/", h.upsert)
		r.With(middleware.RequirePermission("inventory", "read")).Get("/", h.list)
		r.With(middleware.RequirePermission("inventory", "read")).Get("/{id}", h.get)
	})
	r.With(middleware.RequirePermission("inventory", "read")).
		Get("/inventory/status", h.status)
}

type itemReq struct {
	ID           *string         `json:"id,omitempty"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Qty          int             `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ReorderLevel int             `json:"reorderLevel"`
	VendorID     *string         `json:"vendorId,omitempty"`
}

func (h *InventoryHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var req itemReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	i := &item.Item{
		Name:         req.Name,
		Description:  req.Description,
		Qty:          req.Qty,
		UnitPrice:    req.UnitPrice,
		ReorderLevel: req.ReorderLevel,
		VendorID:     req.VendorID,
	}
	if req.ID != nil {
		i.ID = *req.ID
	}

	id, _ := identity(r)
	saved, err := h.ItemSvc.Upsert(r.Context(), id.WorkspaceID, i)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}
	writeJSON(w, status, toItemDTO(saved))
}

func (h *InventoryHandler) get(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	i, err := h.ItemSvc.Get(r.Context(), id.WorkspaceID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemDTO(i))
}

func (h *InventoryHandler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	items, err := h.ItemSvc.List(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toItemDTOs(items))
}

func (h *InventoryHandler) status(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	st, err := h.ItemSvc.GetInventoryStatus(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toInventoryStatusDTO(st))
}

func (h *InventoryHandler) writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, item.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
