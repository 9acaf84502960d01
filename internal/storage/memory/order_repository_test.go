package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newOrder(id, number string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:       id,
		Number:   number,
		UserID:   "user-demo-001",
		Status:   domain.OrderStatusPending,
		Subtotal: 1099900,
		Tax:      197982,
		Total:    1297882,
		ShippingAddress: domain.ShippingAddress{
			FullName: "John Doe",
			City:     "Bangalore",
		},
		CreatedAt: createdAt,
		Items: []domain.OrderItem{
			{
				ID:        id + "-item-1",
				OrderID:   id,
				ProductID: 3,
				Snapshot: domain.ProductSnapshot{
					ID:    3,
					Title: "Apple AirPods 4 Wireless Earbuds",
					Brand: "Apple",
					Price: 1099900,
				},
				Quantity:   1,
				UnitPrice:  1099900,
				TotalPrice: 1099900,
			},
		},
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", "404-0000001-0000001", time.Now().UTC())

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Number != order.Number {
		t.Fatalf("expected number %s, got %s", order.Number, stored.Number)
	}
	if len(stored.Items) != 1 || stored.Items[0].Snapshot.Title != order.Items[0].Snapshot.Title {
		t.Fatalf("items do not round-trip: %+v", stored.Items)
	}
}

func TestOrderRepository_GetMissing(t *testing.T) {
	repo := memory.NewOrderRepository()

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_DuplicateNumber(t *testing.T) {
	repo := memory.NewOrderRepository()
	now := time.Now().UTC()

	first := newOrder("order-1", "404-0000001-0000001", now)
	if err := repo.Create(first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := newOrder("order-2", "404-0000001-0000001", now)
	if err := repo.Create(second); !errors.Is(err, domain.ErrDuplicateOrderNumber) {
		t.Fatalf("expected ErrDuplicateOrderNumber, got %v", err)
	}

	// Первый заказ остаётся читаемым и неизменным.
	stored, err := repo.Get(first.ID)
	if err != nil {
		t.Fatalf("get after duplicate failed: %v", err)
	}
	if stored.Total != first.Total {
		t.Fatalf("first order mutated after duplicate attempt")
	}
}

func TestOrderRepository_SnapshotIsolation(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", "404-0000001-0000001", time.Now().UTC())

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Мутации исходного объекта после сохранения не видны при чтении.
	order.Items[0].Snapshot.Title = "tampered"
	order.Items[0].UnitPrice = 1

	stored, err := repo.Get("order-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Items[0].Snapshot.Title != "Apple AirPods 4 Wireless Earbuds" {
		t.Fatalf("snapshot leaked mutation: %q", stored.Items[0].Snapshot.Title)
	}
	if stored.Items[0].UnitPrice != 1099900 {
		t.Fatalf("unit price leaked mutation: %s", stored.Items[0].UnitPrice)
	}
}

func TestOrderRepository_ListByUserOrdering(t *testing.T) {
	repo := memory.NewOrderRepository()
	base := time.Date(2024, 7, 8, 10, 0, 0, 0, time.UTC)

	// Два заказа с одинаковым created_at и один более новый.
	if err := repo.Create(newOrder("order-a", "404-0000001-0000001", base)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newOrder("order-b", "404-0000002-0000002", base)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newOrder("order-c", "404-0000003-0000003", base.Add(time.Hour))); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		orders, err := repo.ListByUser("user-demo-001")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(orders) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(orders))
		}
		if orders[0].ID != "order-c" || orders[1].ID != "order-b" || orders[2].ID != "order-a" {
			t.Fatalf("unexpected order: %s, %s, %s", orders[0].ID, orders[1].ID, orders[2].ID)
		}
		if len(orders[0].Items) != 1 {
			t.Fatalf("items not attached in list")
		}
	}
}

func TestOrderRepository_GetForUser(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", "404-0000001-0000001", time.Now().UTC())
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := repo.GetForUser("user-demo-001", "order-1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := repo.GetForUser("someone-else", "order-1"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("foreign order must look absent, got %v", err)
	}
}
