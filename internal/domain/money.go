package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money хранит денежную сумму в минимальных единицах валюты (пайсы).
// Целочисленное представление исключает накопление ошибок плавающей точки
// при суммировании позиций заказа.
type Money int64

// MoneyFromMinor оборачивает сумму, уже выраженную в минимальных единицах.
func MoneyFromMinor(minor int64) Money {
	return Money(minor)
}

// Minor возвращает сумму в минимальных единицах.
func (m Money) Minor() int64 {
	return int64(m)
}

// String форматирует сумму как десятичное число с двумя знаками после запятой.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON сериализует сумму как число с двумя дробными знаками.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON принимает число или строку с не более чем двумя дробными знаками.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MulQty умножает цену за единицу на количество. Результат точен:
// округление до двух знаков избыточно, произведение уже в минимальных единицах.
func (m Money) MulQty(qty int32) Money {
	return m * Money(qty)
}

// ApplyRate применяет ставку (например, налоговую) с округлением
// до минимальной единицы по правилу half away from zero.
func (m Money) ApplyRate(rate float64) Money {
	return Money(math.Round(float64(m) * rate))
}

// ParseMoney разбирает строку вида "10999.00" в минимальные единицы.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMoneyInvalid
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrMoneyInvalid, s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMoneyInvalid, s)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMoneyInvalid, s)
	}

	v := units*100 + frac
	if neg {
		v = -v
	}
	return Money(v), nil
}
