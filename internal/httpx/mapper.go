package httpx

import (
	"time"

	"atelier-be/internal/customer"
	"atelier-be/internal/dashboard"
	"atelier-be/internal/item"
	"atelier-be/internal/order"
	"atelier-be/internal/purchase"
	"atelier-be/internal/report"
)

// Wire shapes. Monetary values are rendered as fixed two-decimal
// strings here and nowhere else; the core carries decimals.

type CustomerRef struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderDTO struct {
	ID          string      `json:"id"`
	JobNumber   int         `json:"jobNumber"`
	Title       string      `json:"title"`
	State       string      `json:"state"`
	DueDate     time.Time   `json:"dueDate"`
	ExtendedEta *time.Time  `json:"extendedEta,omitempty"`
	Amount      string      `json:"amount"`
	CustomerID  string      `json:"customerId"`
	Customer    CustomerRef `json:"customer"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toOrderDTO(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID,
		JobNumber:   o.JobNumber,
		Title:       o.Title,
		State:       string(o.State),
		DueDate:     o.DueDate,
		ExtendedEta: o.ExtendedEta,
		Amount:      o.Amount.StringFixed(2),
		CustomerID:  o.CustomerID,
		Customer:    CustomerRef{Name: o.CustomerName, Phone: o.CustomerPhone},
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toOrderDTOs(orders []*order.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return out
}

type StateLogDTO struct {
	ID          string     `json:"id"`
	FromState   string     `json:"fromState"`
	ToState     string     `json:"toState"`
	Notes       *string    `json:"notes,omitempty"`
	ExtendedEta *time.Time `json:"extendedEta,omitempty"`
	User        struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

func toStateLogDTOs(logs []*order.StateLog) []StateLogDTO {
	out := make([]StateLogDTO, 0, len(logs))
	for _, l := range logs {
		dto := StateLogDTO{
			ID:          l.ID,
			FromState:   string(l.FromState),
			ToState:     string(l.ToState),
			Notes:       l.Notes,
			ExtendedEta: l.ExtendedEta,
			CreatedAt:   l.CreatedAt,
		}
		dto.User.Name = l.UserName
		dto.User.Email = l.UserEmail
		out = append(out, dto)
	}
	return out
}

type ItemDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Qty          int       `json:"qty"`
	UnitPrice    string    `json:"unitPrice"`
	ReorderLevel int       `json:"reorderLevel"`
	VendorID     *string   `json:"vendorId,omitempty"`
	VendorName   *string   `json:"vendorName,omitempty"`
	Status       string    `json:"status"`
	Value        string    `json:"value"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toItemDTO(i *item.Item) ItemDTO {
	return ItemDTO{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		Qty:          i.Qty,
		UnitPrice:    i.UnitPrice.StringFixed(2),
		ReorderLevel: i.ReorderLevel,
		VendorID:     i.VendorID,
		VendorName:   i.VendorName,
		Status:       string(i.Status()),
		Value:        i.Value().StringFixed(2),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toItemDTOs(items []*item.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, toItemDTO(i))
	}
	return out
}

type PurchaseDTO struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendorId"`
	ItemID     string    `json:"itemId"`
	VendorName string    `json:"vendorName"`
	ItemName   string    `json:"itemName"`
	Qty        int       `json:"qty"`
	UnitPrice  string    `json:"unitPrice"`
	Total      string    `json:"total"`
	Date       time.Time `json:"date"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toPurchaseDTO(p *purchase.Purchase) PurchaseDTO {
	return PurchaseDTO{
		ID:         p.ID,
		VendorID:   p.VendorID,
		ItemID:     p.ItemID,
		VendorName: p.VendorName,
		ItemName:   p.ItemName,
		Qty:        p.Qty,
		UnitPrice:  p.UnitPrice.StringFixed(2),
		Total:      p.Total.StringFixed(2),
		Date:       p.Date,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}

func toPurchaseDTOs(purchases []*purchase.Purchase) []PurchaseDTO {
	out := make([]PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseDTO(p))
	}
	return out
}

type CustomerDTO struct {
	ID      string  `json:"id"`
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCustomerDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID: c.ID, Name: c.Name, Phone: c.Phone,
		Email: c.Email, Address: c.Address, Notes: c.Notes,
		Height: c.Height, Weight: c.Weight,
		Chest: c.Chest, Waist: c.Waist, Hips: c.Hips,
		Shoulder: c.Shoulder, SleeveLength: c.SleeveLength,
		Neck: c.Neck, Armhole: c.Armhole,
		Inseam: c.Inseam, Thigh: c.Thigh, Knee: c.Knee,
		Calf: c.Calf, Ankle: c.Ankle,
		BackLength: c.BackLength, Crotch: c.Crotch,
		PreferredFit:      c.PreferredFit,
		FabricPreferences: c.FabricPreferences,
		CreatedAt:         c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

type RecentPurchaseDTO struct {
	ID         string    `json:"id"`
	VendorName string    `json:"vendorName"`
	ItemName   string    `json:"itemName"`
	Qty        int       `json:"qty"`
	UnitPrice  string    `json:"unitPrice"`
	Total      string    `json:"total"`
	Date       time.Time `json:"date"`
}

type VendorSummaryDTO struct {
	VendorID      string `json:"vendorId"`
	VendorName    string `json:"vendorName"`
	ItemCount     int    `json:"itemCount"`
	PurchaseCount int    `json:"purchaseCount"`
}

type InventoryStatusDTO struct {
	Summary struct {
		TotalItems      int    `json:"totalItems"`
		LowStockItems   int    `json:"lowStockItems"`
		OutOfStockItems int    `json:"outOfStockItems"`
		TotalValue      string `json:"totalValue"`
	} `json:"summary"`
	Items           []ItemDTO           `json:"items"`
	LowStockItems   []ItemDTO           `json:"lowStockItems"`
	RecentPurchases []RecentPurchaseDTO `json:"recentPurchases"`
	VendorSummary   []VendorSummaryDTO  `json:"vendorSummary"`
}

func toInventoryStatusDTO(st *item.InventoryStatus) InventoryStatusDTO {
	var dto InventoryStatusDTO
	dto.Summary.TotalItems = st.Summary.TotalItems
	dto.Summary.LowStockItems = st.Summary.LowStockItems
	dto.Summary.OutOfStockItems = st.Summary.OutOfStockItems
	dto.Summary.TotalValue = st.Summary.TotalValue.StringFixed(2)

	dto.Items = toItemDTOs(st.Items)
	dto.LowStockItems = toItemDTOs(st.LowStockItems)

	dto.RecentPurchases = make([]RecentPurchaseDTO, 0, len(st.RecentPurchases))
	for _, p := range st.RecentPurchases {
		dto.RecentPurchases = append(dto.RecentPurchases, RecentPurchaseDTO{
			ID:         p.ID,
			VendorName: p.VendorName,
			ItemName:   p.ItemName,
			Qty:        p.Qty,
			UnitPrice:  p.UnitPrice.StringFixed(2),
			Total:      p.Total.StringFixed(2),
			Date:       p.Date,
		})
	}

	dto.VendorSummary = make([]VendorSummaryDTO, 0, len(st.VendorSummary))
	for _, v := range st.VendorSummary {
		dto.VendorSummary = append(dto.VendorSummary, VendorSummaryDTO{
			VendorID:      v.VendorID,
			VendorName:    v.VendorName,
			ItemCount:     v.ItemCount,
			PurchaseCount: v.PurchaseCount,
		})
	}

	return dto
}

type OverdueOrderDTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	DueDate     time.Time   `json:"dueDate"`
	DaysOverdue int         `json:"daysOverdue"`
	State       string      `json:"state"`
	Amount      string      `json:"amount"`
	Customer    CustomerRef `json:"customer"`
}

type ExtendedOrderDTO struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	OriginalDueDate time.Time   `json:"originalDueDate"`
	ExtendedEta     time.Time   `json:"extendedEta"`
	State           string      `json:"state"`
	Amount          string      `json:"amount"`
	Customer        CustomerRef `json:"customer"`
}

type ReportDTO struct {
	Summary struct {
		OrderTotal          string `json:"orderTotal"`
		PurchaseTotal       string `json:"purchaseTotal"`
		OrderCount          int    `json:"orderCount"`
		PurchaseCount       int    `json:"purchaseCount"`
		NetRevenue          string `json:"netRevenue"`
		TotalInventoryValue string `json:"totalInventoryValue"`
		LowStockValue       string `json:"lowStockValue"`
	} `json:"summary"`
	Orders    []OrderDTO    `json:"orders"`
	Purchases []PurchaseDTO `json:"purchases"`
	DateRange struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"dateRange"`
	LowStockItems    []ItemDTO          `json:"lowStockItems"`
	OverdueOrders    []OverdueOrderDTO  `json:"overdueOrders"`
	ExtendedOrders   []ExtendedOrderDTO `json:"extendedOrders"`
	InventoryMetrics struct {
		TotalItems    int `json:"totalItems"`
		LowStockCount int `json:"lowStockCount"`
		OverdueCount  int `json:"overdueCount"`
		ExtendedCount int `json:"extendedCount"`
	} `json:"inventoryMetrics"`
}

func toReportDTO(rep *report.Report) ReportDTO {
	var dto ReportDTO
	dto.Summary.OrderTotal = rep.Summary.OrderTotal.StringFixed(2)
	dto.Summary.PurchaseTotal = rep.Summary.PurchaseTotal.StringFixed(2)
	dto.Summary.OrderCount = rep.Summary.OrderCount
	dto.Summary.PurchaseCount = rep.Summary.PurchaseCount
	dto.Summary.NetRevenue = rep.Summary.NetRevenue.StringFixed(2)
	dto.Summary.TotalInventoryValue = rep.Summary.TotalInventoryValue.StringFixed(2)
	dto.Summary.LowStockValue = rep.Summary.LowStockValue.StringFixed(2)

	dto.Orders = toOrderDTOs(rep.Orders)
	dto.Purchases = toPurchaseDTOs(rep.Purchases)
	dto.DateRange.From = rep.DateRange.From
	dto.DateRange.To = rep.DateRange.To
	dto.LowStockItems = toItemDTOs(rep.LowStockItems)

	dto.OverdueOrders = make([]OverdueOrderDTO, 0, len(rep.OverdueOrders))
	for _, ov := range rep.OverdueOrders {
		dto.OverdueOrders = append(dto.OverdueOrders, OverdueOrderDTO{
			ID:          ov.Order.ID,
			Title:       ov.Order.Title,
			DueDate:     ov.Order.DueDate,
			DaysOverdue: ov.DaysOverdue,
			State:       string(ov.Order.State),
			Amount:      ov.Order.Amount.StringFixed(2),
			Customer:    CustomerRef{Name: ov.Order.CustomerName, Phone: ov.Order.CustomerPhone},
		})
	}

	dto.ExtendedOrders = make([]ExtendedOrderDTO, 0, len(rep.ExtendedOrders))
	for _, ex := range rep.ExtendedOrders {
		dto.ExtendedOrders = append(dto.ExtendedOrders, ExtendedOrderDTO{
			ID:              ex.Order.ID,
			Title:           ex.Order.Title,
			OriginalDueDate: ex.OriginalDueDate,
			ExtendedEta:     ex.ExtendedEta,
			State:           string(ex.Order.State),
			Amount:          ex.Order.Amount.StringFixed(2),
			Customer:        CustomerRef{Name: ex.Order.CustomerName, Phone: ex.Order.CustomerPhone},
		})
	}

	dto.InventoryMetrics.TotalItems = rep.Metrics.TotalItems
	dto.InventoryMetrics.LowStockCount = rep.Metrics.LowStockCount
	dto.InventoryMetrics.OverdueCount = rep.Metrics.OverdueCount
	dto.InventoryMetrics.ExtendedCount = rep.Metrics.ExtendedCount

	return dto
}

type DashboardDTO struct {
	Stats struct {
		Open            int `json:"open"`
		Extended        int `json:"extended"`
		ClosedThisMonth int `json:"closedThisMonth"`
		PickedUp        int `json:"pickedUp"`
	} `json:"stats"`
	DueSoon        []OrderDTO `json:"dueSoon"`
	Overdue        []OrderDTO `json:"overdue"`
	RecentOrders   []OrderDTO `json:"recentOrders"`
	MonthlyRevenue string     `json:"monthlyRevenue"`
}

func toDashboardDTO(d *dashboard.Dashboard) DashboardDTO {
	var dto DashboardDTO
	dto.Stats.Open = d.Stats.Open
	dto.Stats.Extended = d.Stats.Extended
	dto.Stats.ClosedThisMonth = d.Stats.ClosedThisMonth
	dto.Stats.PickedUp = d.Stats.PickedUp
	dto.DueSoon = toOrderDTOs(d.DueSoon)
	dto.Overdue = toOrderDTOs(d.Overdue)
	dto.RecentOrders = toOrderDTOs(d.RecentOrders)
	dto.MonthlyRevenue = d.MonthlyRevenue.StringFixed(2)
	return dto
}
