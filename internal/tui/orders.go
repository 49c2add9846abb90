package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type ordersModel struct {
	orders []models.Order
	idx    int
	status string
}

func (m ordersModel) current() (models.Order, bool) {
	if len(m.orders) == 0 || m.idx < 0 || m.idx >= len(m.orders) {
		return models.Order{}, false
	}
	return m.orders[m.idx], true
}

func (m ordersModel) View() string {
	out := titleStyle.Render("My Orders") + "\n\n"

	if len(m.orders) == 0 {
		out += "  No orders yet\n"
		out += "\n" + helpStyle.Render("2 browse products  q quit")
		return out
	}

	for i, o := range m.orders {
		out += fmt.Sprintf("%s%s  %s  %d items  %s\n",
			cursorFor(i == m.idx), o.PlacedAt.Format("2006-01-02"), fitText(o.Ref, 20), o.ItemCount(), money(o.Totals.Total))
		if i == m.idx {
			for _, l := range o.Lines {
				out += fmt.Sprintf("      %-32s x %-3d %10s\n", fitText(l.Name, 32), l.Quantity, money(l.LineTotal()))
			}
		}
	}

	if m.status != "" {
		out += "\n" + successStyle.Render(m.status)
	}

	out += "\n" + helpStyle.Render("c copy order reference  q quit")
	return out
}
