package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/customer"
	"atelier-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	CustomerSvc customer.Service
}

func (h *CustomerHandler) Register(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.With(middleware.RequirePermission("customers", "create")).Post("/", h.create)
		r.With(middleware.RequirePermission("customers", "read")).Get("/", h.list)
		r.With(middleware.RequirePermission("customers", "read")).Get("/{id}", h.get)
		r.With(middleware.RequirePermission("customers", "update")).Put("/{id}", h.update)
		r.With(middleware.RequirePermission("customers", "delete")).Delete("/{id}", h.delete)
	})
}

type customerReq struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`

	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`

	Chest        *float64 `json:"chest,omitempty"`
	Waist        *float64 `json:"waist,omitempty"`
	Hips         *float64 `json:"hips,omitempty"`
	Shoulder     *float64 `json:"shoulder,omitempty"`
	SleeveLength *float64 `json:"sleeveLength,omitempty"`
	Neck         *float64 `json:"neck,omitempty"`
	Armhole      *float64 `json:"armhole,omitempty"`

	Inseam *float64 `json:"inseam,omitempty"`
	Thigh  *float64 `json:"thigh,omitempty"`
	Knee   *float64 `json:"knee,omitempty"`
	Calf   *float64 `json:"calf,omitempty"`
	Ankle  *float64 `json:"ankle,omitempty"`

	BackLength *float64 `json:"backLength,omitempty"`
	Crotch     *float64 `json:"crotch,omitempty"`

	PreferredFit      *string `json:"preferredFit,omitempty"`
	FabricPreferences *string `json:"fabricPreferences,omitempty"`
}

func (req *customerReq) toModel() *customer.Customer {
	return &customer.Customer{
		Name: req.Name, Phone: req.Phone,
		Email: req.Email, Address: req.Address, Notes: req.Notes,
		Height: req.Height, Weight: req.Weight,
		Chest: req.Chest, Waist: req.Waist, Hips: req.Hips,
		Shoulder: req.Shoulder, SleeveLength: req.SleeveLength,
		Neck: req.Neck, Armhole: req.Armhole,
		Inseam: req.Inseam, Thigh: req.Thigh, Knee: req.Knee,
		Calf: req.Calf, Ankle: req.Ankle,
		BackLength: req.BackLength, Crotch: req.Crotch,
		PreferredFit:      req.PreferredFit,
		FabricPreferences: req.FabricPreferences,
	}
}

func (h *CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	c, err := h.CustomerSvc.Create(r.Context(), id.WorkspaceID, req.toModel())
	if err != nil {
		h.writeCustomerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerDTO(c))
}

func (h *CustomerHandler) update(w http.ResponseWriter, r *http.Request) {
	var req customerReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	c := req.toModel()
	c.ID = chi.URLParam(r, "id")

	updated, err := h.CustomerSvc.Update(r.Context(), id.WorkspaceID, c)
	if err != nil {
		h.writeCustomerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerDTO(updated))
}

func (h *CustomerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	c, err := h.CustomerSvc.Get(r.Context(), id.WorkspaceID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeCustomerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerDTO(c))
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	customers, err := h.CustomerSvc.List(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CustomerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	if err := h.CustomerSvc.Delete(r.Context(), id.WorkspaceID, chi.URLParam(r, "id")); err != nil {
		h.writeCustomerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CustomerHandler) writeCustomerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, customer.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
