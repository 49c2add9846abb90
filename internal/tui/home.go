package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type homeModel struct {
	featured []models.Product
	idx      int
}

func (m homeModel) current() (models.Product, bool) {
	if len(m.featured) == 0 || m.idx < 0 || m.idx >= len(m.featured) {
		return models.Product{}, false
	}
	return m.featured[m.idx], true
}

func (m homeModel) View() string {
	out := titleStyle.Render("Yiopatre Truck Parts") + "\n\n"
	out += "Featured products:\n\n"

	if len(m.featured) == 0 {
		out += "  No featured products\n"
	}
	for i, p := range m.featured {
		out += fmt.Sprintf("%s%-34s %10s  %s\n",
			cursorFor(i == m.idx), fitText(p.Name, 34), money(p.Price), stockLabel(p.Stock))
	}

	out += "\n" + helpStyle.Render("enter details  a add to cart  2 products  q quit")
	return out
}
