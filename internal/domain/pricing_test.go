package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestComputeTotals_SingleLineWithShipping(t *testing.T) {
	// Один AirPods за 10999.00, GST 18%, доставка 40.00 без waiver.
	totals, err := domain.ComputeTotals(
		[]domain.PriceLine{{UnitPrice: 1099900, Quantity: 1}},
		0.18,
		false,
		4000,
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals.Subtotal != 1099900 {
		t.Errorf("subtotal = %s, want 10999.00", totals.Subtotal)
	}
	if totals.Tax != 197982 {
		t.Errorf("tax = %s, want 1979.82", totals.Tax)
	}
	if totals.ShippingFee != 4000 {
		t.Errorf("shipping fee = %s, want 40.00", totals.ShippingFee)
	}
	if totals.Total != 1301882 {
		t.Errorf("total = %s, want 13018.82", totals.Total)
	}
}

func TestComputeTotals_TwoLinesWithWaiver(t *testing.T) {
	// Колонки 449.00 x2 и кабель 569.00 x1, GST 18%, доставка бесплатная.
	totals, err := domain.ComputeTotals(
		[]domain.PriceLine{
			{UnitPrice: 44900, Quantity: 2},
			{UnitPrice: 56900, Quantity: 1},
		},
		0.18,
		true,
		4000,
		0,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals.Subtotal != 146700 {
		t.Errorf("subtotal = %s, want 1467.00", totals.Subtotal)
	}
	if totals.Tax != 26406 {
		t.Errorf("tax = %s, want 264.06", totals.Tax)
	}
	if totals.ShippingFee != 0 {
		t.Errorf("shipping fee = %s, want 0.00", totals.ShippingFee)
	}
	if totals.Total != 173106 {
		t.Errorf("total = %s, want 1731.06", totals.Total)
	}
}

func TestComputeTotals_Discount(t *testing.T) {
	totals, err := domain.ComputeTotals(
		[]domain.PriceLine{{UnitPrice: 10000, Quantity: 1}},
		0.18,
		true,
		4000,
		1000,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Total != 10000+1800-1000 {
		t.Errorf("total = %s, want 108.00", totals.Total)
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	lines := []domain.PriceLine{
		{UnitPrice: 13490000, Quantity: 2},
		{UnitPrice: 309500, Quantity: 3},
		{UnitPrice: 16900, Quantity: 7},
	}

	first, err := domain.ComputeTotals(lines, 0.18, false, 4000, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := domain.ComputeTotals(lines, 0.18, false, 4000, 500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("totals differ between identical calls: %+v vs %+v", again, first)
		}
	}

	if first.Total != first.Subtotal+first.Tax+first.ShippingFee-500 {
		t.Errorf("total %s does not match components", first.Total)
	}
}

func TestComputeTotals_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		lines []domain.PriceLine
		want  error
	}{
		{
			name:  "zero quantity",
			lines: []domain.PriceLine{{UnitPrice: 100, Quantity: 0}},
			want:  domain.ErrItemQtyInvalid,
		},
		{
			name:  "negative quantity",
			lines: []domain.PriceLine{{UnitPrice: 100, Quantity: -2}},
			want:  domain.ErrItemQtyInvalid,
		},
		{
			name:  "negative price",
			lines: []domain.PriceLine{{UnitPrice: -1, Quantity: 1}},
			want:  domain.ErrItemPriceInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ComputeTotals(tc.lines, 0.18, false, 4000, 0)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			if !domain.IsInvalidInput(err) {
				t.Fatalf("error %v is not classified as invalid input", err)
			}
		})
	}
}

func TestComputeTotals_EmptyLines(t *testing.T) {
	// Пустой вход — не ошибка калькулятора: пустоту заказа отклоняет сборщик.
	totals, err := domain.ComputeTotals(nil, 0.18, true, 4000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 0 || totals.Total != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}
