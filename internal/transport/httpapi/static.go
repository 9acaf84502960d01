package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Статические данные витрины. Меняются только с релизом, поэтому
// живут в коде, а не в хранилище.
var footerLinks = domain.FooterLinks{
	GetToKnowUs: []domain.FooterLink{
		{Label: "Careers", Link: "/careers"},
		{Label: "Blog", Link: "/blog"},
		{Label: "About Amazon", Link: "/about"},
		{Label: "Investor Relations", Link: "/investors"},
		{Label: "Amazon Devices", Link: "/devices"},
		{Label: "Amazon Science", Link: "/science"},
	},
	MakeMoneyWithUs: []domain.FooterLink{
		{Label: "Sell products on Amazon", Link: "/sell"},
		{Label: "Sell on Amazon Business", Link: "/business"},
		{Label: "Sell apps on Amazon", Link: "/apps"},
		{Label: "Become an Affiliate", Link: "/affiliate"},
		{Label: "Advertise Your Products", Link: "/advertise"},
		{Label: "Self-Publish with Us", Link: "/publish"},
	},
	AmazonPaymentProducts: []domain.FooterLink{
		{Label: "Amazon Business Card", Link: "/business-card"},
		{Label: "Shop with Points", Link: "/points"},
		{Label: "Reload Your Balance", Link: "/reload"},
		{Label: "Amazon Currency Converter", Link: "/currency"},
	},
	LetUsHelpYou: []domain.FooterLink{
		{Label: "Amazon and COVID-19", Link: "/covid"},
		{Label: "Your Account", Link: "/account"},
		{Label: "Your Orders", Link: "/orders"},
		{Label: "Shipping Rates & Policies", Link: "/shipping"},
		{Label: "Returns & Replacements", Link: "/returns"},
		{Label: "Manage Your Content", Link: "/content"},
		{Label: "Help", Link: "/help"},
	},
}

// Категории строки поиска; "All" означает поиск без фильтра.
var searchCategories = []string{
	"All",
	"Electronics",
	"Computers",
	"Smart Home",
	"Arts & Crafts",
	"Automotive",
	"Baby",
	"Beauty & Personal Care",
	"Books",
	"Fashion",
	"Health & Household",
	"Home & Kitchen",
	"Industrial & Scientific",
	"Kindle Store",
	"Movies & TV",
	"Music",
	"Pet Supplies",
	"Sports & Outdoors",
	"Tools & Home Improvement",
	"Toys & Games",
}

type footerLinksResponse struct {
	FooterLinks      domain.FooterLinks `json:"footerLinks"`
	SearchCategories []string           `json:"searchCategories"`
}

func (s *Server) handleFooterLinks(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, footerLinksResponse{
		FooterLinks:      footerLinks,
		SearchCategories: searchCategories,
	})
}

func (s *Server) handleSearchCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, searchCategories)
}
