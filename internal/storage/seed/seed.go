// Пакет seed содержит встроенный стартовый каталог магазина.
// Данные используются memory-хранилищем напрямую и загружаются
// в PostgreSQL командой cmd/seed.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

// Data — полный набор справочных данных каталога.
type Data struct {
	Categories []domain.Category   `json:"categories"`
	Products   []domain.Product    `json:"products"`
	HeroSlides []domain.HeroSlide  `json:"hero_slides"`
	GridCards  []domain.GridCard   `json:"grid_cards"`
	Deals      []domain.DealWindow `json:"deals"`
}

// Load разбирает встроенный каталог.
func Load() (Data, error) {
	var data Data
	if err := json.Unmarshal(catalogJSON, &data); err != nil {
		return Data{}, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if len(data.Products) == 0 {
		return Data{}, fmt.Errorf("embedded catalog contains no products")
	}
	return data, nil
}

// MustLoad — Load с паникой; каталог встроен в бинарь, ошибка здесь
// означает испорченную сборку.
func MustLoad() Data {
	data, err := Load()
	if err != nil {
		panic(err)
	}
	return data
}
