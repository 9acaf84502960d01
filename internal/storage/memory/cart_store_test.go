package memory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func TestCartStore_AddIncrements(t *testing.T) {
	cart := memory.NewCartStore()

	if err := cart.Add("sess-1", 3, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Add("sess-1", 3, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Add("sess-1", 5, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := cart.Items("sess-1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 3 || lines[0].Quantity != 3 {
		t.Fatalf("expected product 3 x3, got %+v", lines[0])
	}
}

func TestCartStore_SetQuantity(t *testing.T) {
	cart := memory.NewCartStore()
	if err := cart.Add("sess-1", 3, 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := cart.SetQuantity("sess-1", 3, 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	lines, _ := cart.Items("sess-1")
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %+v", lines)
	}

	// Нулевое количество удаляет позицию.
	if err := cart.SetQuantity("sess-1", 3, 0); err != nil {
		t.Fatalf("set quantity to zero: %v", err)
	}
	lines, _ = cart.Items("sess-1")
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCartStore_RemoveAndClear(t *testing.T) {
	cart := memory.NewCartStore()
	_ = cart.Add("sess-1", 3, 1)
	_ = cart.Add("sess-1", 5, 1)

	if err := cart.Remove("sess-1", 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	lines, _ := cart.Items("sess-1")
	if len(lines) != 1 || lines[0].ProductID != 5 {
		t.Fatalf("expected only product 5, got %+v", lines)
	}

	if err := cart.Clear("sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	lines, _ = cart.Items("sess-1")
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", lines)
	}
}

func TestCartStore_SessionIsolation(t *testing.T) {
	cart := memory.NewCartStore()
	_ = cart.Add("sess-1", 3, 1)

	lines, err := cart.Items("sess-2")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("sessions leaked: %+v", lines)
	}
}

func TestCartStore_Validation(t *testing.T) {
	cart := memory.NewCartStore()

	if err := cart.Add("", 3, 1); !errors.Is(err, domain.ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
	if err := cart.Add("sess-1", 3, 0); !errors.Is(err, domain.ErrItemQtyInvalid) {
		t.Fatalf("expected ErrItemQtyInvalid, got %v", err)
	}
}
