package domain

import (
	"strings"
	"time"
)

// Product — карточка товара каталога. Справочные данные, ядро их не изменяет.
type Product struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Price         Money             `json:"price"`
	OriginalPrice Money             `json:"originalPrice"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	Image         string            `json:"image"`
	IsPrime       bool              `json:"isPrime"`
	Category      string            `json:"category"`
	InStock       bool              `json:"inStock"`
	Brand         string            `json:"brand,omitempty"`
	About         []string          `json:"about"`
	Specs         map[string]string `json:"specs"`
	Offers        []Offer           `json:"offers"`
}

// Offer описывает действующее предложение по товару (банковская скидка, обмен и т.п.).
type Offer struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Category — раздел каталога для навигации.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// HeroSlide — слайд главной карусели.
type HeroSlide struct {
	ID              int64  `json:"id"`
	Image           string `json:"image"`
	Title           string `json:"title"`
	Link            string `json:"link"`
	BackgroundColor string `json:"backgroundColor"`
}

// GridCard — промо-карточка главной страницы с набором ссылок.
type GridCard struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	LinkText     string         `json:"link_text"`
	LinkURL      string         `json:"link_url"`
	DisplayOrder int            `json:"display_order"`
	Items        []GridCardItem `json:"items"`
}

// GridCardItem — элемент промо-карточки.
type GridCardItem struct {
	Label string `json:"label,omitempty"`
	Image string `json:"image"`
}

// DealProduct — сокращённая карточка товара внутри акции.
type DealProduct struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Price         Money   `json:"price"`
	OriginalPrice Money   `json:"originalPrice"`
	Discount      int     `json:"discount"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
}

// Deal — акция с ограниченным временем действия.
// EndsAt вычисляется в момент выдачи от длительности окна акции.
type Deal struct {
	ID      int64       `json:"id"`
	Title   string      `json:"title"`
	Product DealProduct `json:"product"`
	EndsAt  time.Time   `json:"endsAt"`
	Claimed int         `json:"claimed,omitempty"`
}

// NormalizeCategorySlug приводит пользовательское название категории
// к слагу каталога: "Home & Kitchen" → "home-kitchen".
// Значения "" и "All" означают отсутствие фильтра и дают пустой слаг.
func NormalizeCategorySlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "all" {
		return ""
	}
	s = strings.ReplaceAll(s, " & ", "-")
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "&", "")
	return s
}

// DealWindow — акция в том виде, в котором она хранится:
// вместо абсолютного момента окончания задана длительность окна.
type DealWindow struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Product       DealProduct `json:"product"`
	EndsInMinutes int         `json:"ends_in_minutes"`
	Claimed       int         `json:"claimed,omitempty"`
}

// Materialize превращает окно акции в выдаваемую наружу акцию,
// отсчитывая EndsAt от переданного момента времени.
func (d DealWindow) Materialize(now time.Time) Deal {
	return Deal{
		ID:      d.ID,
		Title:   d.Title,
		Product: d.Product,
		EndsAt:  now.UTC().Add(time.Duration(d.EndsInMinutes) * time.Minute),
		Claimed: d.Claimed,
	}
}

// FooterLinks — статические ссылки подвала страницы.
type FooterLinks struct {
	GetToKnowUs           []FooterLink `json:"getToKnowUs"`
	MakeMoneyWithUs       []FooterLink `json:"makeMoneyWithUs"`
	AmazonPaymentProducts []FooterLink `json:"amazonPaymentProducts"`
	LetUsHelpYou          []FooterLink `json:"letUsHelpYou"`
}

// FooterLink — одна ссылка подвала.
type FooterLink struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}
