package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// catalogStoreInMemory — in-memory каталог для локальной разработки и тестов.
// Справочные данные после конструктора не мутируются, но мьютекс оставлен
// для симметрии с остальными in-memory хранилищами.
type catalogStoreInMemory struct {
	mu         sync.RWMutex
	products   map[int64]domain.Product
	order      []int64
	categories []domain.Category
	heroSlides []domain.HeroSlide
	gridCards  []domain.GridCard
	deals      []domain.DealWindow
}

// NewCatalogStore возвращает in-memory каталог, наполненный переданными данными.
func NewCatalogStore(
	products []domain.Product,
	categories []domain.Category,
	heroSlides []domain.HeroSlide,
	gridCards []domain.GridCard,
	deals []domain.DealWindow,
) domain.CatalogStore {
	s := &catalogStoreInMemory{
		products:   make(map[int64]domain.Product, len(products)),
		order:      make([]int64, 0, len(products)),
		categories: categories,
		heroSlides: heroSlides,
		gridCards:  gridCards,
		deals:      deals,
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

// GetProduct возвращает товар или ErrProductNotFound.
func (s *catalogStoreInMemory) GetProduct(id int64) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return domain.Product{}, &domain.ProductNotFoundError{ProductID: id}
	}
	return product, nil
}

// ListProducts возвращает товары в порядке загрузки, опционально по категории.
func (s *catalogStoreInMemory) ListProducts(category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slug := domain.NormalizeCategorySlug(category)
	result := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if slug != "" && p.Category != slug {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// SearchProducts ищет по подстроке в названии/категории с фильтром категории.
func (s *catalogStoreInMemory) SearchProducts(query, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slug := domain.NormalizeCategorySlug(category)
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]domain.Product, 0)
	for _, id := range s.order {
		p := s.products[id]
		if slug != "" && !strings.Contains(p.Category, slug) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *catalogStoreInMemory) ListCategories() ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Category(nil), s.categories...), nil
}

func (s *catalogStoreInMemory) ListHeroSlides() ([]domain.HeroSlide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.HeroSlide(nil), s.heroSlides...), nil
}

// ListGridCards возвращает промо-карточки в порядке display_order.
func (s *catalogStoreInMemory) ListGridCards() ([]domain.GridCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := append([]domain.GridCard(nil), s.gridCards...)
	sort.Slice(cards, func(i, j int) bool { return cards[i].DisplayOrder < cards[j].DisplayOrder })
	return cards, nil
}

// ListDeals материализует окна акций от переданного момента времени.
func (s *catalogStoreInMemory) ListDeals(now time.Time) ([]domain.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deals := make([]domain.Deal, 0, len(s.deals))
	for _, w := range s.deals {
		deals = append(deals, w.Materialize(now))
	}
	return deals, nil
}

var _ domain.CatalogStore = (*catalogStoreInMemory)(nil)
