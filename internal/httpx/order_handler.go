package httpx

import (
	"errors"
	"net/http"

	"atelier-be/internal/middleware"
	"atelier-be/internal/order"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	OrderSvc order.Service
}

func (h *OrderHandler) Register(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.With(middleware.RequirePermission("orders", "create")).Post("/", h.create)
		r.With(middleware.RequirePermission("orders", "read")).Get("/", h.list)
		r.With(middleware.RequirePermission("orders", "read")).Get("/{id}", h.get)
		r.With(middleware.RequirePermission("orders", "changeState")).Post("/{id}/state", h.transition)
		r.With(middleware.RequirePermission("orders", "read")).Get("/{id}/history", h.history)
	})
}

type createOrderReq struct {
	CustomerID string          `json:"customerId"`
	Title      string          `json:"title"`
	DueDate    string          `json:"dueDate"`
	Amount     decimal.Decimal `json:"amount"`
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		writeError(w, "due date must be a valid date", http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	o, err := h.OrderSvc.Create(r.Context(), id.WorkspaceID, order.CreateOrderInput{
		CustomerID: req.CustomerID,
		Title:      req.Title,
		DueDate:    dueDate,
		Amount:     req.Amount,
	})
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderDTO(o))
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	orders, err := h.OrderSvc.List(r.Context(), id.WorkspaceID)
	if err != nil {
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTOs(orders))
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	o, err := h.OrderSvc.Get(r.Context(), id.WorkspaceID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

type transitionReq struct {
	NewState    string  `json:"newState"`
	ExtendedEta *string `json:"extendedEta,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request) {
	var req transitionReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	eta, err := parseOptionalDate(req.ExtendedEta)
	if err != nil {
		writeError(w, "extended ETA must be a valid date", http.StatusBadRequest)
		return
	}

	id, _ := identity(r)
	o, err := h.OrderSvc.Transition(r.Context(), id.WorkspaceID, id.UserID, chi.URLParam(r, "id"), order.TransitionInput{
		NewState:    order.State(req.NewState),
		ExtendedEta: eta,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderDTO(o))
}

func (h *OrderHandler) history(w http.ResponseWriter, r *http.Request) {
	id, _ := identity(r)
	logs, err := h.OrderSvc.History(r.Context(), id.WorkspaceID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStateLogDTOs(logs))
}

func (h *OrderHandler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, order.ErrCustomerNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, order.ErrValidation):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}
