package tui

import (
	"fmt"

	"github.com/MKhiriev/go-shop-front/models"
)

type categoriesModel struct {
	items []models.Category
	idx   int
}

func (m categoriesModel) current() (models.Category, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Category{}, false
	}
	return m.items[m.idx], true
}

func (m categoriesModel) View() string {
	out := titleStyle.Render("Categories") + "\n\n"

	for i, c := range m.items {
		out += fmt.Sprintf("%s%-20s %3d products\n", cursorFor(i == m.idx), c.Name, c.Count)
	}

	out += "\n" + helpStyle.Render("enter browse category  q quit")
	return out
}
