package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type detailModel struct {
	product models.Product
}

func (m detailModel) View() string {
	p := m.product
	out := fmt.Sprintf("%s  [%s]\n\n", p.Name, p.Ref)
	out += fmt.Sprintf("Category: %s\n", p.Category)
	out += fmt.Sprintf("Brand:    %s\n", p.Brand)
	out += fmt.Sprintf("Price:    %s\n", money(p.Price))
	out += fmt.Sprintf("Stock:    %s\n", stockLabel(p.Stock))
	if p.WarrantyMonths > 0 {
		out += fmt.Sprintf("Warranty: %d months\n", p.WarrantyMonths)
	}
	out += "\n" + p.Description + "\n"
	out += "\n" + helpStyle.Render("a add to cart  esc close")
	return overlayBoxStyle.Render(out)
}
