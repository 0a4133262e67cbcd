package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"atelier-be/internal/config"
	"atelier-be/internal/customer"
	"atelier-be/internal/db"
	"atelier-be/internal/item"
	"atelier-be/internal/logger"
	"atelier-be/internal/order"
	"atelier-be/internal/rbac"
	"atelier-be/internal/user"
	"atelier-be/internal/vendor"
	"atelier-be/internal/workspace"
)

// Seeds a demo workspace with an owner account, a vendor, starter
// inventory and a handful of orders in each state.
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ctx := context.Background()

	// Wipe in dependency order so reseeding is repeatable.
	for _, table := range []string{
		"order_state_logs", "sessions", "orders", "customers",
		"purchases", "items", "vendors", "users", "workspaces",
	} {
		if _, err := database.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}

	wsRepo := workspace.NewRepository(database)
	ws, err := wsRepo.Create(ctx, "Insightify Fashion Studio", workspace.DefaultJobNumberFloor)
	if err != nil {
		log.Fatalf("failed to create workspace: %v", err)
	}

	userSvc := user.NewService(user.NewRepository(database))
	owner := &user.User{
		Email:       "owner@example.com",
		Name:        "Owner",
		Role:        string(rbac.RoleOwner),
		WorkspaceID: ws.ID,
	}
	if err := userSvc.Register(ctx, owner, "Password123!"); err != nil {
		log.Fatalf("failed to create owner: %v", err)
	}

	vendorSvc := vendor.NewService(vendor.NewRepository(database))
	v1, err := vendorSvc.Create(ctx, ws.ID, &vendor.Vendor{Name: "Makola Fabrics & Notions"})
	if err != nil {
		log.Fatalf("failed to create vendor: %v", err)
	}

	itemSvc := item.NewService(item.NewRepository(database))
	for _, it := range []struct {
		name         string
		qty, reorder int
		price        string
	}{
		{"Ankara Fabric", 20, 10, "25"},
		{"Thread (Black)", 50, 20, "2"},
		{"Zippers (Assorted)", 30, 15, "5"},
		{"Fusible Interfacing", 12, 8, "10"},
		{"Lining Fabric", 18, 10, "8"},
	} {
		_, err := itemSvc.Upsert(ctx, ws.ID, &item.Item{
			Name:         it.name,
			Qty:          it.qty,
			ReorderLevel: it.reorder,
			UnitPrice:    decimal.RequireFromString(it.price),
			VendorID:     &v1.ID,
		})
		if err != nil {
			log.Fatalf("failed to create item %q: %v", it.name, err)
		}
	}

	customerSvc := customer.NewService(customer.NewRepository(database))
	var customers []*customer.Customer
	for _, c := range []struct{ name, phone string }{
		{"Ama", "0240000001"},
		{"Kofi", "0240000002"},
		{"Akosua", "0240000003"},
	} {
		created, err := customerSvc.Create(ctx, ws.ID, &customer.Customer{Name: c.name, Phone: c.phone})
		if err != nil {
			log.Fatalf("failed to create customer %q: %v", c.name, err)
		}
		customers = append(customers, created)
	}

	orderSvc := order.NewService(order.NewRepository(database))
	now := time.Now()
	day := 24 * time.Hour

	seedOrder := func(customerIdx int, title string, due time.Time, amount string, states ...order.State) {
		o, err := orderSvc.Create(ctx, ws.ID, order.CreateOrderInput{
			CustomerID: customers[customerIdx].ID,
			Title:      title,
			DueDate:    due,
			Amount:     decimal.RequireFromString(amount),
		})
		if err != nil {
			log.Fatalf("failed to create order %q: %v", title, err)
		}
		for _, st := range states {
			input := order.TransitionInput{NewState: st}
			if st == order.StateExtended {
				eta := due.Add(3 * day)
				input.ExtendedEta = &eta
			}
			if _, err := orderSvc.Transition(ctx, ws.ID, owner.ID, o.ID, input); err != nil {
				log.Fatalf("failed to move order %q to %s: %v", title, st, err)
			}
		}
	}

	seedOrder(0, "Ladies Kente Dress", now.Add(3*day), "450")
	seedOrder(1, "School Uniform (3 sets)", now.Add(2*day), "300", order.StateExtended)
	seedOrder(2, "Men Suit Alteration", now.Add(-1*day), "120", order.StateClosed)
	seedOrder(0, "Ankara Shirt (L)", now.Add(-5*day), "180", order.StateClosed, order.StatePickedUp)
	seedOrder(1, "Beaded Kaba & Slit", now.Add(1*day), "520")

	log.Printf("✅ Seed complete. Workspace: %s, owner: %s", ws.ID, owner.Email)
}
