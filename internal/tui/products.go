package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/models"
)

// sortCycle is the order the s key steps through.
var sortCycle = []service.SortKey{
	service.SortFeatured,
	service.SortPriceLow,
	service.SortPriceHigh,
	service.SortName,
	service.SortNewest,
}

var sortLabels = map[service.SortKey]string{
	service.SortFeatured:  "featured",
	service.SortPriceLow:  "price: low to high",
	service.SortPriceHigh: "price: high to low",
	service.SortName:      "name",
	service.SortNewest:    "newest",
}

type productsModel struct {
	items []models.Product
	idx   int

	criteria  service.FilterCriteria
	sortIdx   int
	searching bool
	search    textinput.Model

	// categories drives the f key cycle, "all" first.
	categories []string
}

func newProductsModel() productsModel {
	search := textinput.New()
	search.Placeholder = "search products"
	search.Width = 40
	return productsModel{search: search, criteria: service.FilterCriteria{Category: service.CategoryAll}}
}

func (m productsModel) current() (models.Product, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

func (m productsModel) View() string {
	out := titleStyle.Render("Products") + "\n\n"

	if m.searching {
		out += "Search: " + m.search.View() + "\n\n"
	} else {
		out += fmt.Sprintf("category: %s   sort: %s   in stock only: %v   query: %q\n\n",
			m.criteria.Category, sortLabels[sortCycle[m.sortIdx]], m.criteria.InStockOnly, m.search.Value())
	}

	if len(m.items) == 0 {
		out += "  No products match\n"
	}
	for i, p := range m.items {
		out += fmt.Sprintf("%s%-34s %-14s %10s  %s\n",
			cursorFor(i == m.idx), fitText(p.Name, 34), fitText(p.Category, 14), money(p.Price), stockLabel(p.Stock))
	}

	if m.searching {
		out += "\n" + helpStyle.Render("enter apply  esc cancel")
	} else {
		out += "\n" + helpStyle.Render("enter details  a add to cart  / search  f category  s sort  o stock  q quit")
	}
	return out
}
