package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type checkoutModel struct {
	lines  []models.CartLine
	totals models.CartTotals
	user   *models.User
}

func (m checkoutModel) View() string {
	out := titleStyle.Render("Checkout") + "\n\n"

	if m.user != nil {
		out += fmt.Sprintf("Deliver to: %s (%s)\n\n", m.user.FullName(), m.user.Email)
	} else {
		out += "Not logged in. Placing the order will ask you to login.\n\n"
	}

	for _, l := range m.lines {
		out += fmt.Sprintf("  %-34s x %-3d %10s\n", fitText(l.Name, 34), l.Quantity, money(l.LineTotal()))
	}

	out += "\n"
	out += fmt.Sprintf("  Subtotal: %10s\n", money(m.totals.Subtotal))
	out += fmt.Sprintf("  Tax (8%%): %10s\n", money(m.totals.Tax))
	out += fmt.Sprintf("  Total:    %10s\n", money(m.totals.Total))

	out += "\n" + helpStyle.Render("enter place order  esc back to cart")
	return out
}
