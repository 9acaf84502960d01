package domain

// PriceLine — цена за единицу и количество, вход расчёта итогов.
type PriceLine struct {
	UnitPrice Money
	Quantity  int32
}

// Totals — результат расчёта: промежуточная сумма, налог, доставка, итог.
type Totals struct {
	Subtotal    Money
	Tax         Money
	ShippingFee Money
	Total       Money
}

// ComputeTotals вычисляет суммы заказа по позициям.
// Чистая функция: одинаковый вход всегда даёт одинаковый результат.
//
// Порядок вычислений фиксирован: сумма каждой позиции считается отдельно
// (в минимальных единицах произведение точное), затем позиции суммируются,
// налог округляется от промежуточной суммы, доставка обнуляется при waiver.
func ComputeTotals(lines []PriceLine, taxRate float64, hasShippingWaiver bool, flatShippingFee, discount Money) (Totals, error) {
	var subtotal Money
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Totals{}, ErrItemQtyInvalid
		}
		if line.UnitPrice < 0 {
			return Totals{}, ErrItemPriceInvalid
		}
		subtotal += line.UnitPrice.MulQty(line.Quantity)
	}

	tax := subtotal.ApplyRate(taxRate)

	shippingFee := flatShippingFee
	if hasShippingWaiver {
		shippingFee = 0
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: shippingFee,
		Total:       subtotal + tax + shippingFee - discount,
	}, nil
}
