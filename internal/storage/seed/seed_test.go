package seed

import "testing"

func TestLoad(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}

	if len(data.Products) == 0 {
		t.Fatal("expected products in embedded catalog")
	}
	if len(data.Categories) == 0 {
		t.Fatal("expected categories in embedded catalog")
	}

	// Товар 3 (AirPods) участвует в демо-заказах, его цена зафиксирована.
	var found bool
	for _, p := range data.Products {
		if p.ID == 3 {
			found = true
			if p.Price.Minor() != 1099900 {
				t.Errorf("product 3 price = %s, want 10999.00", p.Price)
			}
			if p.Brand != "Apple" {
				t.Errorf("product 3 brand = %q", p.Brand)
			}
		}
		if p.Title == "" {
			t.Errorf("product %d has empty title", p.ID)
		}
		if p.Price < 0 {
			t.Errorf("product %d has negative price", p.ID)
		}
	}
	if !found {
		t.Fatal("product 3 missing from embedded catalog")
	}
}
