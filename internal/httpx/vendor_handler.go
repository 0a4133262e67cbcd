package httpx

import (
	"errors"
	"net/http"
	"time"

	"atelier-be/internal/middleware"
	"atelier-be/internal/vendor"

	"github.com/go-chi/chi/v5"
)

type VendorHandler struct {
	VendorSvc vendor.Service
}

func (h *VendorHandler) Register(r chi.Router) {
	r.Route("/vendors", func(r chi.Router) {
		r.With(middleware.RequirePermission("vendors", "create")).Post("/", h.create)
		r.With(middleware.RequirePermission("vendors", "read")).Get("/", h.list)
		r.With(middleware.RequirePermission("vendors", "read")).Get("/{id}", h.get)
	})
}

type vendorReq struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

type vendorDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toVendorDTO(v *vendor.Vendor) vendorDTO {
	return vendorDTO{
		ID: v.ID, Name: v.Name, Phone: v.Phone, Email: v.Email,
		Address: v.Address, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt,
	}
}

func (h *VendorHandler) create(w http.ResponseWriter, r *http.Request) {
	var req vendorReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	v, err := h.VendorSvc.Create(r.Context(), id.WorkspaceID, &vendor.Vendor{
		Name: req.Name, Phone: req.Phone, Email: req.Email, Address: req.Address,
	})
	if err != nil {
		h.writeVendorError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVendorDTO(v))
}

func (h *VendorHandler) get(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	v, err := h.VendorSvc.Get(r.Context(), id.WorkspaceID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeVendorError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVendorDTO(v))
}

func (h *VendorHandler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	vendors, err := h.VendorSvc.List(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]vendorDTO, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorDTO(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *VendorHandler) writeVendorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vendor.ErrVendorNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, vendor.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
