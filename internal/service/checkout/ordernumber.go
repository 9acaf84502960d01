package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Номера заказов выглядят как "404-5926811-1234567": фиксированный
// префикс и две случайные семизначные группы.
const (
	orderNumberPrefix = "404"
	groupLimit        = 10000000
)

// NewOrderNumber генерирует номер заказа из криптографически
// случайных цифр. Уникальность гарантирует хранилище.
func NewOrderNumber() string {
	return fmt.Sprintf("%s-%07d-%07d", orderNumberPrefix, randomGroup(), randomGroup())
}

func randomGroup() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(groupLimit))
	if err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок.
		panic(fmt.Sprintf("read random order number digits: %v", err))
	}
	return n.Int64()
}
