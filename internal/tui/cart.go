package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type cartModel struct {
	lines  []models.CartLine
	totals models.CartTotals
	idx    int
}

func (m cartModel) current() (models.CartLine, bool) {
	if len(m.lines) == 0 || m.idx < 0 || m.idx >= len(m.lines) {
		return models.CartLine{}, false
	}
	return m.lines[m.idx], true
}

func (m cartModel) View() string {
	out := titleStyle.Render("Shopping Cart") + "\n\n"

	if len(m.lines) == 0 {
		out += "  Your cart is empty\n"
		out += "\n" + helpStyle.Render("2 browse products  q quit")
		return out
	}

	for i, l := range m.lines {
		out += fmt.Sprintf("%s%-34s %10s x %-3d = %10s\n",
			cursorFor(i == m.idx), fitText(l.Name, 34), money(l.Price), l.Quantity, money(l.LineTotal()))
	}

	out += "\n"
	out += fmt.Sprintf("  Subtotal: %10s\n", money(m.totals.Subtotal))
	out += fmt.Sprintf("  Tax (8%%): %10s\n", money(m.totals.Tax))
	out += fmt.Sprintf("  Total:    %10s\n", money(m.totals.Total))

	out += "\n" + helpStyle.Render("+ more  - fewer  x remove  c checkout  q quit")
	return out
}
